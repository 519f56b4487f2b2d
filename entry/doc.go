// Package entry is the trampoline between a native entry point and
// application code.
//
// Main receives argc and argv as a C main function would, validates the
// arguments with argview.New and then either calls the application Handler
// exactly once, returning its status, or writes a fixed diagnostic and
// returns ExitInvalidArgs (255).
//
//	status := entry.Main(ctx, mem, argc, argv, func(ctx context.Context, args argview.View) int32 {
//	    for arg := range args.Values() {
//	        fmt.Println(arg)
//	    }
//	    return 0
//	})
//	os.Exit(int(status))
//
// Process does the same for a Go program's own arguments by laying them out
// in a private buffer first.
package entry
