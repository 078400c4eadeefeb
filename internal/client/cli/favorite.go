package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/storykeeper/internal/common"
)

// Favorites prints the bookmarked stories.
func (a *App) Favorites(ctx context.Context) error {
	favs, err := a.storyService.Favorites(ctx)
	if err != nil {
		printlnFn("Error retrieving favorites:", err.Error())
		return err
	}
	if len(favs) == 0 {
		printlnFn("No favorites yet")
		return nil
	}
	for i := range favs {
		printlnFn(formatStory(&favs[i]))
	}
	return nil
}

// Favorite bookmarks a story from the cached feed by id.
func (a *App) Favorite(ctx context.Context, id string) error {
	story, err := a.storyService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Story not found:", id)
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	if err := a.storyService.AddFavorite(ctx, story); err != nil {
		printlnFn("Error adding favorite:", err.Error())
		return err
	}
	printlnFn("Added to favorites")
	return nil
}

// Unfavorite removes a bookmark. Removing a story that is not bookmarked
// is not an error.
func (a *App) Unfavorite(ctx context.Context, id string) error {
	if err := a.storyService.RemoveFavorite(ctx, id); err != nil {
		printlnFn("Error removing favorite:", err.Error())
		return err
	}
	printlnFn("Removed from favorites")
	return nil
}
