package types

// Log actions carried through the context into every structured log line.
const (
	ActionSignup         = "signup"
	ActionLogin          = "login"
	ActionLocationUpdate = "driver_location_update"
	ActionAssignDriver   = "assign_driver"
	ActionSimulatorTick  = "shuttle_simulator"

	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionEventMarshalFailed      = "marshal_location_event"
	ActionEventPublishFailed      = "publish_location_event"

	ActionDatabaseQueryFailed = "database_query_failed"
)
