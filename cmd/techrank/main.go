package main

import (
	"context"

	"techrank/cmd/techrank/commands"
	"techrank/lib/serviceutil"
)

func main() {
	err := commands.ExecuteContext(serviceutil.SignalContext(context.Background()))
	if err != nil {
		serviceutil.Fatal("techrank failed", err)
	}
}
