package httpx

import "net/http"

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore

type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
