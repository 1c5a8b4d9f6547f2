package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/prafulfillment/namecheap-mcp/config"
	"github.com/prafulfillment/namecheap-mcp/server"
)

func main() {
	app := &cli.App{
		Name:  "namecheap-mcp",
		Usage: "Namecheap domain-management functions behind a uniform calling convention",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the application server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "port",
						Usage: "Port to bind the server to (overrides PORT)",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.InitConfig()
					if err != nil {
						return err
					}
					if port := c.String("port"); port != "" {
						cfg.AppConfig.APIPort = port
					}

					srv, err := server.NewServer(cfg)
					if err != nil {
						return err
					}
					return srv.Run()
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
