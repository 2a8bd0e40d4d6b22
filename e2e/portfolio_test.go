//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papertrade/tradesim-e2e/internal/pages"
	"github.com/papertrade/tradesim-e2e/internal/session"
)

func init() {
	plan.Register("TestPortfolioPageLoads", session.TagPortfolio, session.TagSmoke)
	plan.Register("TestPortfolioMetricsDisplayed", session.TagPortfolio, session.TagSmoke)
	plan.Register("TestPortfolioPositionsOrEmptyState", session.TagPortfolio)
	plan.Register("TestPortfolioPositionDetails", session.TagPortfolio)
	plan.Register("TestPortfolioTradeButtons", session.TagPortfolio)
	plan.Register("TestPortfolioPersistsAfterRefresh", session.TagPortfolio)
}

func TestPortfolioPageLoads(t *testing.T) {
	b := authenticatedPage(t)
	portfolio := pages.NewPortfolio(b)

	require.NoError(t, portfolio.Navigate())
	require.NoError(t, portfolio.ExpectLoaded())
}

func TestPortfolioMetricsDisplayed(t *testing.T) {
	b := authenticatedPage(t)
	portfolio := pages.NewPortfolio(b)

	require.NoError(t, portfolio.Navigate())
	require.NoError(t, portfolio.ExpectMetricsDisplayed())
}

func TestPortfolioPositionsOrEmptyState(t *testing.T) {
	b := authenticatedPage(t)
	portfolio := pages.NewPortfolio(b)

	require.NoError(t, portfolio.Navigate())

	hasPositions, err := portfolio.PositionsDisplayed()
	require.NoError(t, err)
	isEmpty, err := portfolio.EmptyStateDisplayed()
	require.NoError(t, err)

	assert.True(t, hasPositions || isEmpty, "either positions or the empty state should be displayed")
}

func TestPortfolioPositionDetails(t *testing.T) {
	b := authenticatedPage(t)
	portfolio := pages.NewPortfolio(b)

	require.NoError(t, portfolio.Navigate())

	hasPositions, err := portfolio.PositionsDisplayed()
	require.NoError(t, err)
	if !hasPositions {
		t.Skip("account holds no positions")
	}

	count, err := portfolio.PositionCount()
	require.NoError(t, err)
	assert.Positive(t, count, "displayed positions should be countable")
}

func TestPortfolioTradeButtons(t *testing.T) {
	b := authenticatedPage(t)
	portfolio := pages.NewPortfolio(b)

	require.NoError(t, portfolio.Navigate())

	hasPositions, err := portfolio.PositionsDisplayed()
	require.NoError(t, err)
	if !hasPositions {
		t.Skip("account holds no positions")
	}

	visible, err := portfolio.TradeButtonsVisible()
	require.NoError(t, err)
	assert.True(t, visible, "positions should expose a trade action")
}

func TestPortfolioPersistsAfterRefresh(t *testing.T) {
	b := authenticatedPage(t)
	portfolio := pages.NewPortfolio(b)

	require.NoError(t, portfolio.Navigate())

	before, err := portfolio.PositionsDisplayed()
	require.NoError(t, err)

	require.NoError(t, portfolio.Refresh())

	after, err := portfolio.PositionsDisplayed()
	require.NoError(t, err)
	assert.Equal(t, before, after, "portfolio state should persist across a refresh")
}
