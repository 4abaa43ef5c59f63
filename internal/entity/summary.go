package entity

// HomeSummary содержит сводку для главной страницы: счётчики,
// избранные направления и ближайшие туры со свободными местами
type HomeSummary struct {
	TotalDestinations    int64                     `json:"total_destinations"`
	TotalPackages        int64                     `json:"total_packages"`
	TotalBookings        int64                     `json:"total_bookings"`
	FeaturedDestinations []*Destination            `json:"featured_destinations"`
	UpcomingPackages     []*PackageWithDestination `json:"upcoming_packages"`
}
