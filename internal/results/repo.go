package results

import "context"

// Store is the persistence collaborator for game results. Implementations
// must make an appended record visible to the next History call.
type Store interface {
	Append(ctx context.Context, r GameResult) (GameResult, error)
	History(ctx context.Context, userID string) ([]GameResult, error)
	// ListByGame returns a user's results for one game, newest first.
	// limit <= 0 means no limit.
	ListByGame(ctx context.Context, userID, gameID string, limit int) ([]GameResult, error)
	Latest(ctx context.Context, userID, gameID string) (GameResult, error)
}
