// Command backoffice runs the back-office API and its maintenance tasks.
//
//	backoffice serve             # start the HTTP (and optional gRPC) server
//	backoffice migrate           # run pending migrations
//	backoffice migrate:rollback  # revert the last batch
//	backoffice migrate:status
//	backoffice seed              # admin account and sample catalogue
//	backoffice route:list
//
// Configuration comes from config/app.json, .env and the environment.
package main
