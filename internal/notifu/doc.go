// Package notifu compiles notification requests into command lines for the
// notifu balloon notifier and runs them.
//
// The notifier ships as two Windows executables, notifu.exe and notifu64.exe.
// A Resolver picks one from the host architecture, Compile turns a validated
// request into the notifu argument list, and a Dispatcher runs the executable
// in the background and reports a single completion:
//
//	resolver, err := notifu.NewResolver(vendorDir, platform.Cached(platform.Runtime{}))
//	if err != nil {
//		return err
//	}
//	backend := notifu.NewBackend(resolver, notifu.NewDispatcher(execer.Exec{}))
//	backend.Deliver(validated, func(err error) { ... })
//
// The argument protocol understood by notifu:
//
//	-m <message>          message text
//	-p <title>            title
//	-q                    do not play a sound
//	-d <milliseconds>     display duration
//	-i <icon>             icon path or name
//	-t <info|warn|error>  balloon type
//	-e -w -xp -l -k       switches, emitted only when set to true
package notifu
