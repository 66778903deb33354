// Package methods holds the payloads of the bot API methods. Everything but
// this file is generated from schema.yaml; edit the catalog and regenerate.
//
//	p := methods.NewSendMessage(types.ChatID(42).Into(), "<b>hi</b>").
//		WithParseMode(types.ParseModeHTML).
//		WithReplyTo(7)
//	msg, err := botschema.Call(ctx, client, p)
package methods

//go:generate go run ../cmd/payloadgen -schema schema.yaml -o .
