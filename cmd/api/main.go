package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	_ "github.com/badgerttl/ipcalc/docs"
	"github.com/badgerttl/ipcalc/internal/app"
)

//	@title			IPv4 Subnet Calculator API
//	@version		1.0
//	@description	Computes subnet information from an address/mask expression and enumerates child subnets page by page.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/api/v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := app.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
