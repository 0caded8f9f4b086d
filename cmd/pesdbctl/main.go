package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/preston-bernstein/efootball-data-service/cmd/pesdbctl/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	commands.ExecuteContext(ctx)
}
