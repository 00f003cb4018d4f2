// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ore

import (
	"github.com/gagliardetto/solana-go"

	"github.com/oreprotocol/ore/builtin/reverts"
	"github.com/oreprotocol/ore/ledger"
	"github.com/oreprotocol/ore/ore"
	"github.com/oreprotocol/ore/token"
)

// deposit stakes tokens of the signer, opening the stake account on first
// use.
//
// Accounts: signer, sender, config, mint, stake, treasury, treasury_tokens, system, token.
func (p *Program) deposit(tx *ledger.Tx, accounts []solana.PublicKey, args Deposit) error {
	if err := expectAccounts(accounts, 9); err != nil {
		return err
	}
	signer, sender, configAddr, mint := accounts[0], accounts[1], accounts[2], accounts[3]
	stakeAddr, treasuryAddr, treasuryTokens := accounts[4], accounts[5], accounts[6]
	system, tokenProgram := accounts[7], accounts[8]

	signerAuth, err := tx.Signer(signer)
	if err != nil {
		return err
	}
	if args.Amount == 0 {
		return reverts.New(reverts.AmountTooSmall, "nothing to deposit")
	}
	if _, err := p.loadConfig(tx, configAddr, mint); err != nil {
		return err
	}
	if err := expectAssociated(sender, signer, mint); err != nil {
		return err
	}
	stakeD, err := p.pda.Verify(stakeAddr, ore.StakeSeed, mint[:], signer[:])
	if err != nil {
		return err
	}
	treasury, _, err := p.loadTreasury(tx, treasuryAddr, mint)
	if err != nil {
		return err
	}
	if err := expectAssociated(treasuryTokens, treasuryAddr, mint); err != nil {
		return err
	}
	if err := expectProgram(system, solana.SystemProgramID); err != nil {
		return err
	}
	if err := expectProgram(tokenProgram, token.ProgramID); err != nil {
		return err
	}

	empty, err := isEmpty(tx, stakeAddr)
	if err != nil {
		return err
	}
	var stake *Stake
	if empty {
		if err := tx.CreateAccount(signer, stakeAddr, StakeSize, p.id, &stakeD); err != nil {
			return err
		}
		stake = &Stake{Authority: signer, RewardsIndex: treasury.Index}
	} else if stake, err = p.loadStake(tx, stakeAddr, mint, signer); err != nil {
		return err
	}

	stake.Reconcile(treasury.Index)
	if err := token.Transfer(tx, sender, treasuryTokens, args.Amount, signerAuth); err != nil {
		return err
	}
	stake.Balance = ore.SatAdd(stake.Balance, args.Amount)
	stake.LastDepositAt = tx.Clock().UnixTimestamp
	treasury.TotalStaked = ore.SatAdd(treasury.TotalStaked, args.Amount)

	return p.finishStakeOp(tx, OpDeposit, stakeAddr, stake, treasuryAddr, treasury, args.Amount)
}

// withdraw unstakes tokens to the signer's token account.
//
// Accounts: signer, recipient, config, mint, stake, treasury, treasury_tokens, token.
func (p *Program) withdraw(tx *ledger.Tx, accounts []solana.PublicKey, args Withdraw) error {
	if args.Amount == 0 {
		return reverts.New(reverts.AmountTooSmall, "nothing to withdraw")
	}
	op, err := p.openPayout(tx, accounts)
	if err != nil {
		return err
	}
	if op.stake.Balance < args.Amount {
		return reverts.Newf(reverts.InsufficientFunds, "staked %d, withdrawing %d", op.stake.Balance, args.Amount)
	}
	if err := op.pay(tx, args.Amount); err != nil {
		return err
	}
	op.stake.Balance -= args.Amount
	op.stake.LastWithdrawAt = tx.Clock().UnixTimestamp
	op.treasury.TotalStaked = ore.SatSub(op.treasury.TotalStaked, args.Amount)

	return p.finishStakeOp(tx, OpWithdraw, op.stakeAddr, op.stake, op.treasuryAddr, op.treasury, args.Amount)
}

// claimYield pays up to the requested amount of accrued yield.
//
// Accounts: signer, recipient, config, mint, stake, treasury, treasury_tokens, token.
func (p *Program) claimYield(tx *ledger.Tx, accounts []solana.PublicKey, args ClaimYield) error {
	if args.Amount == 0 {
		return reverts.New(reverts.AmountTooSmall, "nothing to claim")
	}
	op, err := p.openPayout(tx, accounts)
	if err != nil {
		return err
	}
	amount := min(args.Amount, op.stake.Rewards)
	if err := op.pay(tx, amount); err != nil {
		return err
	}
	op.stake.Rewards -= amount
	op.stake.LastClaimAt = tx.Clock().UnixTimestamp
	op.treasury.TotalUnclaimed = ore.SatSub(op.treasury.TotalUnclaimed, amount)

	return p.finishStakeOp(tx, OpClaimYield, op.stakeAddr, op.stake, op.treasuryAddr, op.treasury, amount)
}

// payout is a reconciled stake position about to be paid from the treasury.
type payout struct {
	recipient      solana.PublicKey
	stakeAddr      solana.PublicKey
	stake          *Stake
	treasuryAddr   solana.PublicKey
	treasury       *Treasury
	treasuryTokens solana.PublicKey
	authority      ledger.Authority
}

func (p *Program) openPayout(tx *ledger.Tx, accounts []solana.PublicKey) (*payout, error) {
	if err := expectAccounts(accounts, 8); err != nil {
		return nil, err
	}
	signer, recipient, configAddr, mint := accounts[0], accounts[1], accounts[2], accounts[3]
	stakeAddr, treasuryAddr, treasuryTokens, tokenProgram := accounts[4], accounts[5], accounts[6], accounts[7]

	if _, err := tx.Signer(signer); err != nil {
		return nil, err
	}
	if _, err := p.loadConfig(tx, configAddr, mint); err != nil {
		return nil, err
	}
	if err := expectAssociated(recipient, signer, mint); err != nil {
		return nil, err
	}
	stake, err := p.loadStake(tx, stakeAddr, mint, signer)
	if err != nil {
		return nil, err
	}
	treasury, treasuryD, err := p.loadTreasury(tx, treasuryAddr, mint)
	if err != nil {
		return nil, err
	}
	if err := expectAssociated(treasuryTokens, treasuryAddr, mint); err != nil {
		return nil, err
	}
	if err := expectProgram(tokenProgram, token.ProgramID); err != nil {
		return nil, err
	}
	auth, err := tx.Authorize(treasuryD)
	if err != nil {
		return nil, err
	}

	stake.Reconcile(treasury.Index)
	return &payout{
		recipient:      recipient,
		stakeAddr:      stakeAddr,
		stake:          stake,
		treasuryAddr:   treasuryAddr,
		treasury:       treasury,
		treasuryTokens: treasuryTokens,
		authority:      auth,
	}, nil
}

func (o *payout) pay(tx *ledger.Tx, amount uint64) error {
	if amount == 0 {
		return nil
	}
	return token.Transfer(tx, o.treasuryTokens, o.recipient, amount, o.authority)
}

func (p *Program) finishStakeOp(
	tx *ledger.Tx,
	op Op,
	stakeAddr solana.PublicKey,
	stake *Stake,
	treasuryAddr solana.PublicKey,
	treasury *Treasury,
	amount uint64,
) error {
	if err := p.store(tx, stakeAddr, stake.Encode()); err != nil {
		return err
	}
	if err := p.store(tx, treasuryAddr, treasury.Encode()); err != nil {
		return err
	}
	logger.Debug(op.String(), "authority", stake.Authority, "amount", amount, "balance", stake.Balance, "rewards", stake.Rewards)
	metricTotalStaked().Set(int64(min(treasury.TotalStaked, 1<<63-1)))

	return p.emit(tx, EventStake, &StakeEvent{
		Op:          uint8(op),
		Authority:   stake.Authority,
		Amount:      amount,
		Balance:     stake.Balance,
		Rewards:     stake.Rewards,
		TotalStaked: treasury.TotalStaked,
		Timestamp:   timestamp(tx),
	})
}
