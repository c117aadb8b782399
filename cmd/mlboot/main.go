// cmd/mlboot/main.go
package main

import (
	"mlboot/internal/app"
	"mlboot/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
