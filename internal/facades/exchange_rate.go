package facades

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-family-wallet/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExchangeRatesGRPCFacade reads fiat cross rates from the exchanger service.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetFiatRates returns units of each currency per one USD, keyed by upper-case currency code.
func (f *ExchangeRatesGRPCFacade) GetFiatRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, classifyGRPC(err)
	}

	rates := make(map[string]decimal.Decimal, len(resp.Rates))
	for currency, rate := range resp.Rates {
		if rate <= 0 {
			logger.Log.Warnw("skipping non-positive exchange rate", "currency", currency, "rate", rate)
			continue
		}
		rates[strings.ToUpper(currency)] = decimal.NewFromFloat32(rate)
	}

	return rates, nil
}

// classifyGRPC separates "exchanger answered with an error" from "exchanger unreachable".
func classifyGRPC(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return err
	default:
		return fmt.Errorf("%w: exchanger: %s", ErrSourceFailure, st.Message())
	}
}
