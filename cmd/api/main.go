package main

import (
	appfx "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
