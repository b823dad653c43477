package main

import (
	donorhttp "github.com/fwojciec/donorlist/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := donorhttp.NewServer(deps.Service, deps.Logger)
	srv.Addr = c.Addr

	deps.Logger.Info("listening", "addr", c.Addr)
	return srv.Open()
}
