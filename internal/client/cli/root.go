package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Name + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to StoryKeeper CLI (type 'help' for commands)")

	// initial connectivity check; a reachable API drains the offline queue
	if err := a.authService.Ping(ctx); err != nil {
		a.Mode = ModeOffline
	} else {
		a.Mode = ModeOnline
		a.drainPending(ctx)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
