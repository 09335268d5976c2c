package main

// General API documentation for swaggo. Run `swag init` to regenerate docs.
//
// @title           heartd API
// @version         1.0.0
// @description     HTTP API for heart disease risk prediction.
//
// @contact.name   heartd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
