package user

type User struct {
	Id          int
	Uid         string
	DisplayName string
	Settings    Settings
}

type Settings struct {
	// Locale selects display-label formatting ("ja" or "en"). It never
	// influences bucketing math.
	Locale string
}
