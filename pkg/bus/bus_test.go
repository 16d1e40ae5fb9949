package bus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"TradeScope/internal/domain/models"
)

func TestSequencesPerEventKind(t *testing.T) {
	b := New(WithCapacity(16))

	require.NoError(t, b.PublishMarketData("2024-01-02", "SPY", 1, 2, 3, 0, 100))
	require.NoError(t, b.PublishMarketData("2024-01-03", "SPY", 2, 3, 4, 1, 100))
	require.NoError(t, b.PublishOrderPlace(models.Order{Symbol: "SPY", Amount: 1}))
	require.NoError(t, b.PublishPortfolioInfo(models.NewPortfolio(1000)))

	first := <-b.Events()
	require.Equal(t, models.EventMarketData, first.Type)
	require.Equal(t, uint64(1), first.MarketData.ID)

	second := <-b.Events()
	require.Equal(t, uint64(2), second.MarketData.ID)

	// Each kind owns its own counter, so these start back at 1.
	order := <-b.Events()
	require.Equal(t, uint64(1), order.OrderPlace.ID)

	portfolio := <-b.Events()
	require.Equal(t, uint64(1), portfolio.PortfolioInfo.ID)
}

func TestShutdownArrivesAfterEarlierEvents(t *testing.T) {
	b := New()
	require.NoError(t, b.PublishMarketData("2024-01-02", "SPY", 1, 2, 3, 0, 100))
	require.NoError(t, b.PublishShutdown())

	first := <-b.Events()
	require.Equal(t, models.EventMarketData, first.Type)

	second := <-b.Events()
	require.Equal(t, models.EventShutdown, second.Type)
	require.Equal(t, uint64(1), second.Shutdown.ID)
}

func TestPublishAfterClose(t *testing.T) {
	b := New()
	b.Close()

	err := b.PublishMarketData("2024-01-02", "SPY", 1, 2, 3, 0, 100)
	require.ErrorIs(t, err, ErrBusClosed)
	require.ErrorIs(t, b.PublishShutdown(), ErrBusClosed)
}

func TestCloseIsIdempotent(t *testing.T) {
	b := New()
	b.Close()
	require.NotPanics(t, func() { b.Close() })
}

func TestClosedChannelDrains(t *testing.T) {
	b := New()
	require.NoError(t, b.PublishMarketData("2024-01-02", "SPY", 1, 2, 3, 0, 100))
	b.Close()

	_, ok := <-b.Events()
	require.True(t, ok)
	_, ok = <-b.Events()
	require.False(t, ok)
}
