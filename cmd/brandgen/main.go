// brandgen regenerates the GitGud brand images: icon.png, splash-icon.png,
// adaptive-icon.png and favicon.png. Run without arguments to rebuild all
// four into assets/images, overwriting what is there.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
