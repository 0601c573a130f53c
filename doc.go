// Package fintrack provides the aggregation and metrics engine for a personal
// finance ledger. It is designed to be local-first, auditable, and
// deterministic, ensuring users have full control and transparency over their
// financial data.
//
// The core functionalities include:
//   - Ledger Aggregation: Grouping dated transactions by calendar month and
//     category into income, expense, and net summaries.
//   - Budget Reconciliation: Comparing a month's aggregated spending against
//     declared budgets to produce remaining amounts and utilization.
//   - Trend Analysis: Rolling multi-month series for income vs. expenses,
//     per-category spending, and savings rate.
//   - Goal Evaluation: Progress, time remaining, and status classification
//     for financial goals.
//   - Portfolio Evaluation: Value, profit and loss, and allocation share for
//     investment positions.
//   - Data Persistence: Encoding and decoding of financial records to and
//     from human-readable, version-controllable formats (JSONL and JSON).
//
// Every computation that depends on "now" takes an explicit reference date,
// so the engine stays a pure function over the records it is given. Wall-clock
// defaults belong to the `ft` command-line tool built on top of this package.
package fintrack
