package ports

// ViewInvalidator tells the presentation layer that what it last read for a
// route is outdated.
type ViewInvalidator interface {
	MarkStale(route string)
}

func PollsRoute() string {
	return "/polls"
}

func PollRoute(id string) string {
	return "/polls/" + id
}
