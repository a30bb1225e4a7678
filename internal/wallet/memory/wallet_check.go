package memory

import "walletgate/internal/wallet"

var (
	_ wallet.ConsentNetwork  = (*Wallet)(nil)
	_ wallet.CredentialIndex = (*Wallet)(nil)
	_ wallet.AppStore        = (*Wallet)(nil)
)
