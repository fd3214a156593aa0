package tip

import "context"

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=repository_mock.go --case=underscore

type Repository interface {
	Create(ctx context.Context, tip *SafetyTip) error
	List(ctx context.Context) ([]SafetyTip, error)
}
