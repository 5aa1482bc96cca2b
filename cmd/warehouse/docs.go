package main

// @title Warehouse Service API
// @version 1.0
// @description Inventory ledger and order picking with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/tair/warehouse
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/tair/warehouse/blob/main/LICENSE

// @host localhost:8000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Inventory
// @tag.description Ledger read endpoints

// @tag.name Products
// @tag.description Ledger change endpoints

// @tag.name Orders
// @tag.description Order creation and picking endpoints

// @tag.name Dashboard
// @tag.description Aggregate statistics

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints

//go:generate swag init -g docs.go -d ./,../../internal -o ../../docs
