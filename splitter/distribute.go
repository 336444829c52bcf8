// Copyright (c) 2026 IoTeX Foundation
// This is an alpha (internal) release and is not suitable for production. This source code is provided 'as is' and no
// warranties are given as to title or non-infringement, merchantability or fitness for purpose and, to the extent
// permitted by law, all liability for your use of the code is disclaimed. This source code is governed by Apache
// License 2.0 that can be found in the LICENSE file.

package splitter

import (
	"context"
	"math/big"

	"github.com/iotexproject/iotex-address/address"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/iotexproject/iotex-yieldsplit/state"
)

// Distribute splits freshly harvested yield of a pool. The caller is the pool itself or an allow-listed scheduler,
// and the yield must already be in the engine's custody.
//
// The protocol fee is rounded up and sent to the treasury. Each partial tier's personal portion is credited to its
// accumulator, and everything else, including the rounding remainder, is paid to the campaign.
func (e *Engine) Distribute(
	ctx context.Context,
	poolAddr, asset address.Address,
	totalYield *big.Int,
) (*DistributionRecord, error) {
	caller, err := callerOf(ctx)
	if err != nil {
		return nil, err
	}
	var rec *DistributionRecord
	err = e.run(ctx, "distribute", func(ctx context.Context, ws *state.WorkingSet) (address.Address, []payout, error) {
		if totalYield == nil || totalYield.Sign() < 0 {
			return nil, nil, errors.Wrapf(ErrInvalidAmount, "yield %v", totalYield)
		}
		if isZeroAddress(poolAddr) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "pool")
		}
		if isZeroAddress(asset) {
			return nil, nil, errors.Wrap(ErrZeroAddress, "asset")
		}
		adm, err := loadAdmin(ws)
		if err != nil {
			return nil, nil, err
		}
		if !sameAddress(caller, poolAddr) && (isZeroAddress(caller) || !adm.hasScheduler(caller)) {
			return nil, nil, errors.Wrapf(ErrNotDistributor, "caller %s", addrString(caller))
		}
		p, err := loadPool(ws, poolAddr)
		if err != nil {
			return nil, nil, err
		}
		poolAsset, err := p.asset()
		if err != nil {
			return nil, nil, err
		}
		if !sameAddress(poolAsset, asset) {
			return nil, nil, errors.Wrapf(ErrAssetMismatch, "pool asset %s, got %s", p.Asset, asset.String())
		}
		c, err := e.campaigns.Campaign(ctx, p.CampaignID)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to get campaign %d", p.CampaignID)
		}
		if c == nil || c.Status != CampaignActive {
			return nil, nil, errors.Wrapf(ErrCampaignNotActive, "campaign %d", p.CampaignID)
		}
		if isZeroAddress(c.Payout) {
			return nil, nil, errors.Wrapf(ErrZeroAddress, "payout of campaign %d", c.ID)
		}
		if totalYield.Sign() == 0 {
			return nil, nil, ErrNothingToDistribute
		}

		fee, net := splitFee(totalYield, adm.FeeRateBps)
		personal := accrue(p, net)
		campaignPortion := new(big.Int).Sub(net, personal)

		p.TotalFees.Add(p.TotalFees, fee)
		p.TotalCampaign.Add(p.TotalCampaign, campaignPortion)
		p.TotalPersonal.Add(p.TotalPersonal, personal)
		p.Distributions++
		if err := ws.PutState(_ledgerNS, poolKey(poolAddr), p); err != nil {
			return nil, nil, err
		}
		rec = &DistributionRecord{
			Pool:              poolAddr,
			Asset:             asset,
			CampaignID:        p.CampaignID,
			Gross:             new(big.Int).Set(totalYield),
			Fee:               fee,
			Net:               net,
			CampaignPortion:   campaignPortion,
			PersonalAccounted: personal,
			Timestamp:         e.clock.Now(),
		}
		return asset, []payout{
			{to: e.treasury, amount: fee, kind: "fee"},
			{to: c.Payout, amount: campaignPortion, kind: "campaign"},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	poolID := poolAddr.String()
	observeAmount(poolID, "fee", rec.Fee)
	observeAmount(poolID, "campaign", rec.CampaignPortion)
	observeAmount(poolID, "personal", rec.PersonalAccounted)
	e.logger.Info("Yield distributed.",
		zap.String("pool", poolID),
		zap.String("gross", rec.Gross.String()),
		zap.String("fee", rec.Fee.String()),
		zap.String("campaign", rec.CampaignPortion.String()),
		zap.String("personal", rec.PersonalAccounted.String()))
	e.emit(ctx, rec)
	return rec, nil
}

// splitFee returns the fee, rounded up, and the distributable rest of the yield
func splitFee(totalYield *big.Int, feeRateBps uint64) (*big.Int, *big.Int) {
	fee := new(big.Int).Mul(totalYield, new(big.Int).SetUint64(feeRateBps))
	fee.Add(fee, big.NewInt(_bpsDenominator-1))
	fee.Quo(fee, big.NewInt(_bpsDenominator))
	return fee, new(big.Int).Sub(totalYield, fee)
}

// accrue credits the personal portion of each non-empty partial tier to its accumulator, returning the total credited
func accrue(p *pool, distributable *big.Int) *big.Int {
	personal := big.NewInt(0)
	if p.TotalShares.Sign() == 0 || distributable.Sign() == 0 {
		return personal
	}
	denominator := new(big.Int).Mul(p.TotalShares, big.NewInt(_percent))
	for _, t := range partialTiers {
		bucket := p.bucket(t)
		if bucket.Sign() == 0 {
			continue
		}
		portion := new(big.Int).Mul(distributable, bucket)
		portion.Mul(portion, big.NewInt(t.PersonalFraction()))
		portion.Quo(portion, denominator)
		if portion.Sign() == 0 {
			continue
		}
		inc := new(big.Int).Mul(portion, _precision)
		inc.Quo(inc, bucket)
		acc := p.accPerShare(t)
		acc.Add(acc, inc)
		personal.Add(personal, portion)
	}
	return personal
}
