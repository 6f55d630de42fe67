package server

import (
	"log"

	"github.com/fatih/color"
)

// logRequest logs an HTTP request colored by its status class
func logRequest(method, path, status string) {
	var class byte
	if status != "" {
		class = status[0]
	}
	switch class {
	case '2':
		log.Print(color.GreenString("%s %s %s", method, path, status))
	case '3':
		log.Print(color.YellowString("%s %s %s", method, path, status))
	case '4':
		log.Print(color.RedString("%s %s %s", method, path, status))
	case '5':
		log.Print(color.MagentaString("%s %s %s", method, path, status))
	default:
		log.Printf("%s %s %s", method, path, status)
	}
}

// logFailure logs a server-side failure that is never sent to the client
func logFailure(format string, args ...interface{}) {
	log.Print(color.MagentaString(format, args...))
}
