// pkg/gen/stations.go

package gen

// Station is a weather station with its mean temperature.
type Station struct {
	Name string
	Mean float64
}

var DefaultStations = []Station{
	{"Abha", 18.0}, {"Abidjan", 26.0}, {"Accra", 26.4}, {"Addis Ababa", 16.0},
	{"Adelaide", 17.3}, {"Alexandria", 20.0}, {"Almaty", 10.0}, {"Amsterdam", 10.2},
	{"Anchorage", 2.8}, {"Athens", 19.2}, {"Auckland", 15.2}, {"Baghdad", 22.77},
	{"Bangkok", 28.6}, {"Barcelona", 18.2}, {"Beijing", 12.9}, {"Berlin", 10.3},
	{"Bogotá", 13.3}, {"Bulawayo", 18.9}, {"Cairo", 21.4}, {"Cape Town", 16.2},
	{"Chicago", 9.8}, {"Copenhagen", 9.1}, {"Dakar", 24.0}, {"Dubai", 26.9},
	{"Dublin", 9.8}, {"Hamburg", 9.7}, {"Helsinki", 5.9}, {"Hong Kong", 23.3},
	{"Istanbul", 13.9}, {"Jakarta", 26.7}, {"Kinshasa", 25.3}, {"Lagos", 26.8},
	{"Lima", 19.8}, {"London", 11.3}, {"Madrid", 15.0}, {"Mexico City", 17.5},
	{"Montreal", 6.8}, {"Moscow", 5.8}, {"Mumbai", 27.1}, {"Nairobi", 17.8},
	{"New York City", 12.9}, {"Oslo", 5.7}, {"Palermo", 18.5}, {"Paris", 12.3},
	{"Reykjavík", 4.3}, {"Rome", 15.2}, {"San Francisco", 14.6}, {"Santiago", 14.7},
	{"São Paulo", 19.7}, {"Seoul", 12.5}, {"Singapore", 27.0}, {"Stockholm", 6.6},
	{"Sydney", 17.7}, {"Tokyo", 15.4}, {"Toronto", 9.4}, {"Vancouver", 10.4},
	{"Vienna", 10.4}, {"Warsaw", 8.5}, {"Yakutsk", -8.8}, {"Zürich", 9.3},
}
