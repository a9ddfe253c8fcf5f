package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("HOOKLINE_ADDR"),
		},
	}
}

// Merge fills values not given by flag or env var from f
func (c *Server) Merge(cmd *cli.Command, f *File) {
	if !cmd.IsSet("addr") && f.Server.Addr != "" {
		c.Addr = f.Server.Addr
	}
}
