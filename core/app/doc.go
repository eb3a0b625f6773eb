// Package app is the request-handling core of the onion framework: an
// application object holding an ordered middleware pipeline, a per-request
// context with request and response views, and a response finalizer.
//
// Middleware receives the context and a continuation, forming the classic
// onion control flow: stages run in registration order on the way in and in
// reverse order after their next call settles.
//
//	a := app.New()
//
//	a.Use(func(ctx *app.Context, next app.Next) error {
//		start := time.Now()
//		err := next()
//		log.Printf("%s %s %v", ctx.Request().Method(), ctx.Request().Path(), time.Since(start))
//		return err
//	})
//
//	a.Use(func(ctx *app.Context, next app.Next) error {
//		ctx.SetBody("Hello World")
//		return nil
//	})
//
//	http.ListenAndServe(":8080", a.Callback())
//
// The package deliberately contains no router: path matching and verb
// dispatch belong to middleware. Errors returned (or panics raised) by any
// stage funnel through a single per-request error path that reports the
// failure and synthesizes a status-based response; see Option values such as
// WithErrorHandler and WithSilent for the observability policy.
package app
