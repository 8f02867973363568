package main

// General API documentation for swaggo. Run `swag init -g cmd/journalplot/docs.go`
// to generate docs, then build with -tags=swagger to serve them.
//
// @title           journalplot preview API
// @version         1.0
// @description     HTTP API for listing and rendering publication-ready demo figures.
//
// @contact.name   journalplot maintainers
// @contact.url    https://github.com/your-org/journalplot
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
