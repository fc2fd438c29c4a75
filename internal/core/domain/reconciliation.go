package domain

// Allocation is the split of a denomination vector between drawer and deposit.
type Allocation struct {
	Drawer      DenominationVector
	Deposit     DenominationVector
	DepositNeed int64 // Value that had to leave the eligible tiers, minor units
	Overage     int64 // Part of DepositNeed the eligible stock could not cover; stays in the drawer
}

// VectorSummary is a vector together with its totals in minor units.
type VectorSummary struct {
	Denominations DenominationVector
	CoinSubtotal  int64
	Total         int64
}

// LegendEntry names one tier of the currency table.
type LegendEntry struct {
	Name      string
	FaceValue int64
}

// ReconciliationResult is the report produced for one drawer count. Amounts are minor units.
type ReconciliationResult struct {
	CurrencyCode string
	Symbol       string
	Fraction     int
	DrawerTarget int64
	Legend       []LegendEntry
	GrandTotal   int64
	Deposit      VectorSummary
	Drawer       VectorSummary
	Overage      int64
}
