//go:build js && wasm

// dashboard-wasm runs the dashboard client in the browser. Build with
//
//	GOOS=js GOARCH=wasm go build -o static/dashboard.wasm ./cmd/dashboard-wasm
package main

import (
	"context"
	"strings"

	"phish_trainer/pkg/client"
	"phish_trainer/pkg/dashboard"
	"phish_trainer/pkg/dashboard/domview"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"
)

func main() {
	logger.InitConsole(false)

	doc := domview.New()
	doc.Ready(func() {
		// event callbacks must not block on fetch
		go start(doc)
	})

	select {}
}

func start(doc *domview.Document) {
	lang, _, _ := strings.Cut(doc.Lang(), "-")

	// the session cookie rides along with same-origin requests
	backend := client.NewClient(doc.Origin())
	dash := dashboard.New(backend, doc.Elements(),
		dashboard.WithLogger(logger.Log),
		dashboard.WithCatalog(i18n.New(lang)),
	)
	dash.Init(context.Background())
}
