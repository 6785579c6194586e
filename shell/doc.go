// Package shell runs the window event loop. It owns the windows of an
// application, translates raw backend events into the portable event
// model, and dispatches them to per-window handlers on a single
// goroutine.
//
// A minimal application builds a window with a handler and runs:
//
//	app := shell.New(b, shell.DefaultOptions())
//	handle, err := app.NewWindowBuilder().
//		SetTitle("demo").
//		SetHandler(h).
//		Build()
//	if err != nil {
//		return err
//	}
//	handle.Show()
//	return app.Run()
package shell
