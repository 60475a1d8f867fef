package usecase

import "scorecard_backend/internal/feature/risk/domain/entity"

// The three advisor records are static content tables keyed by the same
// score bands as Interpret. They are returned by value so callers cannot
// mutate the templates.

var conservativeAdvisor = entity.AdvisorInfo{
	Title: "Conservative Investor",
	Goals: []string{
		"Preserve Capital",
		"Earn modest, stable returns",
		"Minimize volatility",
	},
	Portfolio: entity.Portfolio{
		{Name: "Short-Term Bond Funds", Rationale: "Low volatility, low interest rate sensitivity"},
		{Name: "Intermediate-Term Bonds", Rationale: "Balanced yield and safety"},
		{Name: "Municipal Bond Funds", Rationale: "Tax-efficient income (high tax brackets)"},
		{Name: "Dividend Equity Funds", Rationale: "Conservative exposure to stocks with income focus"},
		{Name: "Balanced / Allocation Funds", Rationale: "40/60 or 30/70 stock-to-bond ratio for stability"},
		{Name: "Money Market Funds", Rationale: "Near-cash equivalents, very low risk"},
		{Name: "Target-Date Funds (Near Term)", Rationale: "Automatically reduce risk as target date approaches"},
		{Name: "Real Estate (REITs) (limited)", Rationale: "Income + diversification, modest allocation"},
	},
	Tips: []string{
		"Avoid high-yield (junk) bonds and small-cap equity funds",
		"Keep equity exposure under 40% of total portfolio",
	},
}

var moderateAdvisor = entity.AdvisorInfo{
	Title: "Moderate Investor",
	Goals: []string{
		"Grow wealth over time",
		"Accept moderate risk for better returns",
		"Maintain diversification",
	},
	Portfolio: entity.Portfolio{
		{Name: "Blend (Core) Equity Funds", Rationale: "Balanced growth and value exposure"},
		{Name: "Mid-Cap and Large-Cap Funds", Rationale: "Growth potential with more stability"},
		{Name: "Dividend / Income Funds", Rationale: "Earn income while still being in the stock market"},
		{Name: "Target-Date Funds (Mid-Term)", Rationale: "Risk-reducing over time"},
		{Name: "60/40 or 70/30 Allocation Funds", Rationale: "Good mix of stocks and bonds"},
		{Name: "International Equity Funds", Rationale: "Diversification outside U.S."},
		{Name: "REITs or Infrastructure Funds", Rationale: "Inflation hedge, some income"},
		{Name: "High-Quality Corporate Bonds", Rationale: "Steady income with moderate risk"},
	},
	Tips: []string{
		"Avoid putting too much in sector-specific or emerging market funds",
		"Rebalance annually to maintain target allocation",
	},
}

var aggressiveAdvisor = entity.AdvisorInfo{
	Title: "Aggressive Investor",
	Goals: []string{
		"Maximize capital appreciation",
		"Tolerate short-term losses for long-term gains",
		"Seek alpha and thematic growth",
	},
	Portfolio: entity.Portfolio{
		{Name: "Small-Cap and Micro-Cap Funds", Rationale: "High growth potential, albeit volatile"},
		{Name: "Growth Equity Funds", Rationale: "Invest in companies with strong earnings growth"},
		{Name: "Emerging Market Funds", Rationale: "High-risk, high-return international exposure"},
		{Name: "Technology / Innovation ETFs", Rationale: "Targeted growth in AI, cloud, biotech, etc."},
		{Name: "Thematic / ESG / Blockchain ETFs", Rationale: "Trend-driven and speculative growth"},
		{Name: "Actively Managed Funds", Rationale: "Try to outperform the market via expert management"},
		{Name: "International Equity Funds", Rationale: "Broaden high-growth potential"},
		{Name: "High-Yield Bonds (Junk)", Rationale: "For aggressive fixed income exposure"},
		{Name: "Private Equity or Alt ETFs", Rationale: "Non-traditional assets for high returns"},
	},
	Tips: []string{
		"Maintain a small percentage (10–20%) in bonds or stable funds for downside protection",
		"Watch sector and single-country overexposure",
		"Even aggressive investors should limit high-risk assets to a portion of portfolio",
	},
}

// AdvisorFor resolves the fixed investor-profile record for a score.
func AdvisorFor(score int) entity.AdvisorInfo {
	switch {
	case score < moderateFloor:
		return conservativeAdvisor
	case score < aggressiveFloor:
		return moderateAdvisor
	default:
		return aggressiveAdvisor
	}
}
