package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cairn-chain/cairn/x/pricefeed/types"
)

// ReadPegReading polls the secondary reference feed and classifies the
// current round. It never returns an error: any venue failure or malformed
// round collapses into the invalid sentinel, which callers score as they see
// fit. The checks run in a fixed order: round read, answer sign, update time
// present, round answered, future time, staleness, decimals.
func (k Keeper) ReadPegReading(ctx context.Context) types.PegReading {
	round, err := k.pegFeed.LatestRoundData(ctx)
	if err != nil {
		return types.InvalidPegReading()
	}

	decimals, err := k.pegFeed.Decimals(ctx)
	if err != nil {
		return types.InvalidPegReading()
	}

	if round.Answer.IsNil() || !round.Answer.IsPositive() {
		return types.InvalidPegReading()
	}

	// Unix() <= 0 covers both the venue's unset zero and the Go zero time.
	if round.UpdatedAt.Unix() <= 0 {
		return types.InvalidPegReading()
	}

	// A round carried over without an answer reports answeredInRound behind
	// the round id.
	if round.AnsweredInRound < round.RoundID {
		return types.InvalidPegReading()
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime()
	if round.UpdatedAt.Unix() > now.Unix() {
		return types.InvalidPegReading()
	}

	params := k.GetParams(ctx)
	if uint64(now.Unix()-round.UpdatedAt.Unix()) > params.PegMaxAge {
		return types.InvalidPegReading()
	}

	if decimals > types.PegTargetDecimals {
		return types.InvalidPegReading()
	}

	return types.PegReading{
		Price:     types.ScalePegAnswer(round.Answer, decimals),
		UpdatedAt: round.UpdatedAt,
		RoundID:   round.RoundID,
		Valid:     true,
	}
}
