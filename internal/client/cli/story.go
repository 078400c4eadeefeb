package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
)

func formatStory(s *models.Story) string {
	out := fmt.Sprintf("[%s] %s (%s)\n  %s", s.ID, s.Name, s.CreatedAt.Local().Format(time.RFC822), s.Description)
	if s.HasLocation() {
		out += fmt.Sprintf("\n  location: %.5f, %.5f", *s.Lat, *s.Lon)
	}
	out += "\n  photo: " + s.PhotoURL
	return out
}

// List prints the story feed, noting when it was served from the local cache.
func (a *App) List(ctx context.Context) error {
	feed, fromCache, err := a.storyService.List(ctx)
	if err != nil {
		printlnFn("Error retrieving stories:", err.Error())
		return err
	}

	if fromCache {
		printlnFn("Server unreachable, showing cached feed")
	}
	if len(feed) == 0 {
		printlnFn("No stories yet")
		return nil
	}
	for i := range feed {
		printlnFn(formatStory(&feed[i]))
	}
	return nil
}

// Search prints cached stories whose author or description matches the query.
func (a *App) Search(ctx context.Context, query string) error {
	found, err := a.storyService.Search(ctx, query)
	if err != nil {
		printlnFn("Search error:", err.Error())
		return err
	}
	if len(found) == 0 {
		printlnFn("No matching stories")
		return nil
	}
	for i := range found {
		printlnFn(formatStory(&found[i]))
	}
	return nil
}

// Add walks the user through a story submission: description, photo file
// and coordinates. When the server is unreachable the story is queued
// locally and uploaded on the next sync.
func (a *App) Add(ctx context.Context) error {
	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}

	photoPath, err := getSimpleText(a.reader, "Enter photo file path", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := os.ReadFile(photoPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			printlnFn("File not found:", photoPath)
		} else {
			printlnFn("Error reading photo:", err.Error())
		}
		return err
	}

	lat, err := GetCoordinate(a.reader, "Enter latitude", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	lon, err := GetCoordinate(a.reader, "Enter longitude", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	result, err := a.storyService.Add(ctx, description, photo, filepath.Base(photoPath), lat, lon)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if result.Queued {
		printlnFn("Server unreachable, story queued for sync")
	} else {
		printlnFn("Story shared!")
	}
	return nil
}

// Pending prints the offline submission queue.
func (a *App) Pending(ctx context.Context) error {
	queued, err := a.storyService.ListPending(ctx)
	if err != nil {
		printlnFn("Error retrieving pending stories:", err.Error())
		return err
	}
	if len(queued) == 0 {
		printlnFn("No pending stories")
		return nil
	}
	for _, p := range queued {
		printlnFn(fmt.Sprintf("[%s] queued %s\n  %s", p.TempID, p.CreatedAt.Local().Format(time.RFC822), p.Description))
	}
	return nil
}
