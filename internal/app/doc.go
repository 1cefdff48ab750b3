// Package app contains the example driver's application logic. It defines the
// App struct, its configuration and the run lifecycle, decoupled from the
// command line parsing that populates the configuration.
package app
