// Quote Calculation Lambda entry point
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"boiler-quote-engine/internal/handlers"
	"boiler-quote-engine/internal/utils"
)

func main() {
	// Initialize logger
	_ = utils.InitLogger("info")
	defer utils.Sync()

	// Create handler
	handler, err := handlers.NewQuoteHandler()
	if err != nil {
		panic("Failed to create handler: " + err.Error())
	}

	// Start Lambda
	lambda.Start(handler.Handle)
}
