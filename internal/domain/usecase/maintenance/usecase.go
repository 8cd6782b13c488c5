package maintenance

import "context"

type UseCase interface {
	// Run refreshes the store statistics and returns the number of stored items
	Run(ctx context.Context) (int64, error)
}
