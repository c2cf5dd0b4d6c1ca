package catalog

// Condition selects which stat an achievement is measured against.
type Condition string

const (
	ConditionCount      Condition = "count"
	ConditionStreak     Condition = "streak"
	ConditionEarly      Condition = "early"
	ConditionWealth     Condition = "wealth"
	ConditionCollection Condition = "collection"
)

type AchievementDef struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Icon        string    `json:"icon" yaml:"icon"`
	Condition   Condition `json:"conditionType" yaml:"condition"`
	Threshold   int       `json:"threshold" yaml:"threshold"`
}

var achievements = []AchievementDef{
	// Tasks completed
	{ID: "novice", Title: "Novice Doer", Description: "Complete 1 task", Icon: "🌱", Condition: ConditionCount, Threshold: 1},
	{ID: "pro", Title: "Getting Serious", Description: "Complete 10 tasks", Icon: "🔨", Condition: ConditionCount, Threshold: 10},
	{ID: "expert", Title: "Task Expert", Description: "Complete 25 tasks", Icon: "⭐", Condition: ConditionCount, Threshold: 25},
	{ID: "master", Title: "Productivity Machine", Description: "Complete 50 tasks", Icon: "⚔️", Condition: ConditionCount, Threshold: 50},
	{ID: "legend", Title: "Task Legend", Description: "Complete 100 tasks", Icon: "👑", Condition: ConditionCount, Threshold: 100},
	{ID: "grandmaster", Title: "Grandmaster", Description: "Complete 250 tasks", Icon: "🧘", Condition: ConditionCount, Threshold: 250},
	{ID: "demigod", Title: "Productivity God", Description: "Complete 500 tasks", Icon: "⚡", Condition: ConditionCount, Threshold: 500},
	{ID: "eternal", Title: "Eternal Doer", Description: "Complete 1000 tasks", Icon: "♾️", Condition: ConditionCount, Threshold: 1000},

	// Streaks
	{ID: "streak_3", Title: "On a Roll", Description: "Complete tasks 3 days in a row", Icon: "🔥", Condition: ConditionStreak, Threshold: 3},
	{ID: "streak_7", Title: "Week Warrior", Description: "Complete tasks 7 days in a row", Icon: "📅", Condition: ConditionStreak, Threshold: 7},
	{ID: "streak_14", Title: "Fortnight Focus", Description: "Complete tasks 14 days in a row", Icon: "🌗", Condition: ConditionStreak, Threshold: 14},
	{ID: "streak_30", Title: "Unstoppable", Description: "Complete tasks 30 days in a row", Icon: "🚀", Condition: ConditionStreak, Threshold: 30},

	// Early completions (more than a day ahead of the deadline)
	{ID: "early_1", Title: "Early Bird", Description: "Finish a task a day early", Icon: "🐦", Condition: ConditionEarly, Threshold: 1},
	{ID: "early_5", Title: "Ahead of Schedule", Description: "Finish 5 tasks a day early", Icon: "⏰", Condition: ConditionEarly, Threshold: 5},
	{ID: "early_20", Title: "Time Lord", Description: "Finish 20 tasks a day early", Icon: "⌛", Condition: ConditionEarly, Threshold: 20},

	// Lifetime points earned
	{ID: "wealth_500", Title: "Piggy Bank", Description: "Earn 500 points", Icon: "🐷", Condition: ConditionWealth, Threshold: 500},
	{ID: "wealth_2000", Title: "Savings Account", Description: "Earn 2,000 points", Icon: "💰", Condition: ConditionWealth, Threshold: 2000},
	{ID: "wealth_5000", Title: "Treasure Hoard", Description: "Earn 5,000 points", Icon: "💎", Condition: ConditionWealth, Threshold: 5000},
	{ID: "wealth_10000", Title: "Tycoon", Description: "Earn 10,000 points", Icon: "🏦", Condition: ConditionWealth, Threshold: 10000},

	// Accessories owned
	{ID: "shop_1", Title: "First Buy", Description: "Buy 1 item", Icon: "🛍️", Condition: ConditionCollection, Threshold: 1},
	{ID: "shop_5", Title: "Fashionista", Description: "Own 5 accessories", Icon: "🎀", Condition: ConditionCollection, Threshold: 5},
	{ID: "shop_10", Title: "Wardrobe", Description: "Own 10 accessories", Icon: "👗", Condition: ConditionCollection, Threshold: 10},
	{ID: "shop_20", Title: "Collector", Description: "Own 20 accessories", Icon: "🧳", Condition: ConditionCollection, Threshold: 20},
}
