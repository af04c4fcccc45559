package rules

// DeliveryRules returns the built-in ruleset for the food delivery dataset.
// It covers the business invariants of every validated column: domain sets
// and ranges for the categorical and numeric fields, mutual functional
// dependencies between order id and delivery person id, per-person
// consistency of age and rating, one coordinate pair per location id, and
// the ordering of order and pickup times.
func DeliveryRules() []Rule {
	return []Rule{
		// Order id and delivery person id must determine each other. The
		// two directions are independent invariants with their own IDs.
		NewFuncDep("id_determines_delivery_person", "id", "delivery_person_id"),
		NewFuncDep("delivery_person_determines_id", "delivery_person_id", "id"),

		// Per-person attributes must be constant across a person's orders.
		NewFuncDep("delivery_person_age_consistent", "delivery_person_id", "delivery_person_age"),
		NewFuncDep("delivery_person_rating_consistent", "delivery_person_id", "delivery_person_rating"),

		// One resolved coordinate pair per location id.
		NewFuncDep("restaurant_coordinates_consistent", "restaurant_id",
			"restaurant_latitude", "restaurant_longitude"),
		NewFuncDep("delivery_location_coordinates_consistent", "delivery_location_id",
			"delivery_location_latitude", "delivery_location_longitude"),

		// Numeric domains, inclusive on both ends.
		NewRange("delivery_person_rating_range", "delivery_person_rating", 1, 5),
		NewRange("restaurant_latitude_range", "restaurant_latitude", -90, 90),
		NewRange("restaurant_longitude_range", "restaurant_longitude", -180, 180),
		NewRange("delivery_location_latitude_range", "delivery_location_latitude", -90, 90),
		NewRange("delivery_location_longitude_range", "delivery_location_longitude", -180, 180),
		NewRange("delivery_time_range", "delivery_time", 0, 120),

		// Categorical domains.
		NewSet("weather_condition_domain", "weather_condition",
			"Fog", "Cloudy", "Sunny", "Sandstorms", "Windy", "Stormy"),
		NewSet("road_traffic_density_domain", "road_traffic_density",
			"Low", "Medium", "High", "Jam"),
		NewSet("vehicle_condition_domain", "vehicle_condition", "0", "1", "2", "3"),
		NewSet("type_of_order_domain", "type_of_order", "Meal", "Snack", "Drinks", "Buffet"),
		NewSet("type_of_vehicle_domain", "type_of_vehicle",
			"motorcycle", "scooter", "electric_scooter", "bicycle"),
		NewSet("festival_domain", "festival", "Yes", "No"),
		NewSet("city_domain", "city", "Metropolitan", "Urban", "Semi-Urban"),

		// Completeness.
		NewNonMissing("order_date_present", "order_date"),

		// Pickup must not precede the order.
		NewTimeOrder("order_pickup_ordering", "time_ordered", "time_order_picked", DefaultTimeLayout),
	}
}
