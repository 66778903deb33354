package botschema

// Package botschema is the typed request/response layer for a bot platform's
// HTTP JSON method catalog.
//
// - Payloads are generated from method descriptors (methods/schema.yaml) with a
//   New<Method>(required...) constructor and chainable With<Field> setters
// - Optional fields are Optional[T]; Nullable[T] only where null is a value
// - Responses decode through Shapes whose fields are strict, lenient (absence
//   substitutes a documented sentinel) or optional
// - Errors are Issues (JSON Pointer, field, code, message); definition errors
//   are SchemaError
//
// Design policy:
// - The root package holds the runtime; domain values live in types/, generated
//   payloads in methods/, and the generator under internal/ and cmd/payloadgen.
// - The core is pure; only Client talks to a Transport.
//
// Typical usage:
//
//  c := botschema.NewClient(transport, botschema.WithLogger(logger))
//  msg, err := botschema.Call(ctx, c, methods.NewSendMessage(types.ChatID(42).Into(), "hi").
//      WithParseMode(types.ParseModeHTML))
//
//  f, err := types.FileShape.DecodeWithMeta(data)
//  if f.Defaulted("/file_size") { ... }
//
