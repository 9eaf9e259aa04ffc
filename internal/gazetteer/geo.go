package gazetteer

// HotspotLevel grades a hotspot's baseline tension.
type HotspotLevel string

const (
	HotspotLow      HotspotLevel = "low"
	HotspotElevated HotspotLevel = "elevated"
	HotspotHigh     HotspotLevel = "high"
)

// Hotspot is a fixed point of strategic interest (chokepoints, straits).
type Hotspot struct {
	Name  string
	Lat   float64
	Lon   float64
	Level HotspotLevel
	Desc  string
}

// ConflictZone is a named active or frozen conflict area.
type ConflictZone struct {
	Name string
	Lat  float64
	Lon  float64
	Desc string
}

// InfrastructureKind distinguishes strategic infrastructure entries.
type InfrastructureKind string

const (
	InfraCable    InfrastructureKind = "cable"
	InfraNuclear  InfrastructureKind = "nuclear"
	InfraMilitary InfrastructureKind = "military"
)

// Infrastructure is a fixed strategic installation.
type Infrastructure struct {
	Name string
	Kind InfrastructureKind
	Lat  float64
	Lon  float64
	Desc string
}

// Hotspots lists maritime chokepoints and flashpoints.
var Hotspots = []Hotspot{
	{Name: "Strait of Hormuz", Lat: 26.6, Lon: 56.3, Level: HotspotHigh, Desc: "Oil chokepoint between Iran and Oman; a fifth of global oil transits here"},
	{Name: "Suez Canal", Lat: 30.5, Lon: 32.3, Level: HotspotElevated, Desc: "Egypt's canal linking the Mediterranean and Red Sea"},
	{Name: "Panama Canal", Lat: 9.1, Lon: -79.7, Level: HotspotLow, Desc: "Panama's interoceanic canal, key for US east coast trade"},
	{Name: "Taiwan Strait", Lat: 24.5, Lon: 119.5, Level: HotspotHigh, Desc: "Strait separating Taiwan from mainland China"},
	{Name: "South China Sea", Lat: 12.0, Lon: 113.0, Level: HotspotHigh, Desc: "Contested waters claimed by China, Vietnam, Philippines and Malaysia"},
	{Name: "Bering Strait", Lat: 65.8, Lon: -168.9, Level: HotspotLow, Desc: "Arctic passage between the United States and Russia"},
	{Name: "Strait of Malacca", Lat: 2.5, Lon: 101.5, Level: HotspotElevated, Desc: "Shipping lane between Malaysia, Singapore and Indonesia"},
	{Name: "Bab el-Mandeb", Lat: 12.6, Lon: 43.3, Level: HotspotHigh, Desc: "Red Sea gate between Yemen, Djibouti and Eritrea; shipping attacked from Yemen"},
	{Name: "English Channel", Lat: 50.2, Lon: -0.7, Level: HotspotLow, Desc: "Channel between the United Kingdom and France"},
	{Name: "Bosphorus Strait", Lat: 41.1, Lon: 29.1, Level: HotspotElevated, Desc: "Turkey's strait controlling Black Sea access"},
}

// ConflictZones lists active conflict areas.
var ConflictZones = []ConflictZone{
	{Name: "Ukraine", Lat: 49.0, Lon: 32.0, Desc: "Full-scale war following the Russian invasion"},
	{Name: "Gaza", Lat: 31.4, Lon: 34.4, Desc: "Israel-Hamas war and humanitarian crisis"},
	{Name: "Sudan", Lat: 15.6, Lon: 32.5, Desc: "Civil war between SAF and RSF"},
	{Name: "Sahel", Lat: 14.5, Lon: 0.0, Desc: "Insurgencies across Mali, Burkina Faso, Niger and Chad"},
	{Name: "Myanmar", Lat: 19.8, Lon: 96.1, Desc: "Civil war after the 2021 coup"},
	{Name: "Yemen", Lat: 15.4, Lon: 44.2, Desc: "Civil war and Red Sea shipping attacks"},
	{Name: "Syria", Lat: 35.0, Lon: 38.0, Desc: "Fragmented civil conflict and foreign intervention"},
	{Name: "Nagorno-Karabakh", Lat: 39.8, Lon: 46.8, Desc: "Armenia-Azerbaijan contested region"},
}

// Infrastructures lists strategic cable landings, nuclear sites, and
// military bases.
var Infrastructures = []Infrastructure{
	// Submarine cable landings
	{Name: "NYC", Kind: InfraCable, Lat: 40.6, Lon: -74.0, Desc: "Transatlantic cable landing cluster, United States"},
	{Name: "Cornwall", Kind: InfraCable, Lat: 50.1, Lon: -5.5, Desc: "Major cable landing in the United Kingdom"},
	{Name: "Marseille", Kind: InfraCable, Lat: 43.3, Lon: 5.4, Desc: "Mediterranean cable hub, France"},
	{Name: "Mumbai", Kind: InfraCable, Lat: 19.1, Lon: 72.9, Desc: "India's main submarine cable gateway"},
	{Name: "Singapore", Kind: InfraCable, Lat: 1.3, Lon: 103.8, Desc: "Southeast Asia cable interconnect"},
	{Name: "Hong Kong", Kind: InfraCable, Lat: 22.3, Lon: 114.2, Desc: "Cable landing hub for China and the region"},
	{Name: "Tokyo", Kind: InfraCable, Lat: 35.6, Lon: 139.8, Desc: "Transpacific landing cluster, Japan"},
	{Name: "Sydney", Kind: InfraCable, Lat: -33.9, Lon: 151.2, Desc: "Australia's primary cable landing"},
	{Name: "Miami", Kind: InfraCable, Lat: 25.8, Lon: -80.2, Desc: "Americas cable hub, United States"},
	// Nuclear sites
	{Name: "Natanz", Kind: InfraNuclear, Lat: 33.7, Lon: 51.7, Desc: "Iran's main uranium enrichment facility"},
	{Name: "Yongbyon", Kind: InfraNuclear, Lat: 39.8, Lon: 125.8, Desc: "North Korea's nuclear research center"},
	{Name: "Dimona", Kind: InfraNuclear, Lat: 31.0, Lon: 35.1, Desc: "Israel's Negev nuclear research center"},
	{Name: "Bushehr", Kind: InfraNuclear, Lat: 28.8, Lon: 50.9, Desc: "Iran's civilian nuclear power plant"},
	{Name: "Zaporizhzhia", Kind: InfraNuclear, Lat: 47.5, Lon: 34.6, Desc: "Europe's largest nuclear plant, occupied in Ukraine"},
	{Name: "Chernobyl", Kind: InfraNuclear, Lat: 51.4, Lon: 30.1, Desc: "Decommissioned plant and exclusion zone, Ukraine"},
	{Name: "Fukushima", Kind: InfraNuclear, Lat: 37.4, Lon: 141.0, Desc: "Decommissioning site in Japan"},
	// Military bases
	{Name: "Ramstein", Kind: InfraMilitary, Lat: 49.4, Lon: 7.6, Desc: "US air base in Germany, NATO logistics hub"},
	{Name: "Diego Garcia", Kind: InfraMilitary, Lat: -7.3, Lon: 72.4, Desc: "UK-US base in the Indian Ocean"},
	{Name: "Okinawa", Kind: InfraMilitary, Lat: 26.3, Lon: 127.8, Desc: "US bases in Japan's southern islands"},
	{Name: "Guam", Kind: InfraMilitary, Lat: 13.4, Lon: 144.8, Desc: "US Pacific forward base"},
	{Name: "Djibouti", Kind: InfraMilitary, Lat: 11.5, Lon: 43.1, Desc: "Foreign base cluster in Djibouti at the Bab el-Mandeb"},
	{Name: "Al Udeid", Kind: InfraMilitary, Lat: 25.1, Lon: 51.3, Desc: "US air base in Qatar"},
	{Name: "Kaliningrad", Kind: InfraMilitary, Lat: 54.7, Lon: 20.5, Desc: "Russia's Baltic exclave garrison"},
	{Name: "Sevastopol", Kind: InfraMilitary, Lat: 44.6, Lon: 33.5, Desc: "Black Sea fleet base in occupied Crimea, Ukraine"},
	{Name: "Hainan", Kind: InfraMilitary, Lat: 18.2, Lon: 109.5, Desc: "China's submarine base island"},
}

// HotspotCountries maps hotspot names to the countries they touch.
// Manual overrides for names that don't literally appear in any
// description text.
var HotspotCountries = map[string][]string{
	"Strait of Hormuz":  {"Iran", "Oman", "United Arab Emirates"},
	"Suez Canal":        {"Egypt"},
	"Panama Canal":      {"Panama"},
	"Taiwan Strait":     {"Taiwan", "China"},
	"South China Sea":   {"China", "Vietnam", "Philippines", "Malaysia"},
	"Bering Strait":     {"United States", "Russia"},
	"Strait of Malacca": {"Malaysia", "Singapore", "Indonesia"},
	"Bab el-Mandeb":     {"Yemen", "Djibouti", "Eritrea"},
	"English Channel":   {"United Kingdom", "France"},
	"Bosphorus Strait":  {"Turkey"},
}

// InfrastructureCountries maps infrastructure names to host countries.
var InfrastructureCountries = map[string][]string{
	"NYC":          {"United States"},
	"Cornwall":     {"United Kingdom"},
	"Marseille":    {"France"},
	"Mumbai":       {"India"},
	"Singapore":    {"Singapore"},
	"Hong Kong":    {"China"},
	"Tokyo":        {"Japan"},
	"Sydney":       {"Australia"},
	"Miami":        {"United States"},
	"Ramstein":     {"Germany"},
	"Diego Garcia": {"United Kingdom"},
	"Okinawa":      {"Japan"},
	"Guam":         {"United States"},
	"Djibouti":     {"Djibouti"},
	"Al Udeid":     {"Qatar"},
	"Kaliningrad":  {"Russia"},
	"Sevastopol":   {"Ukraine", "Russia"},
	"Hainan":       {"China"},
	"Natanz":       {"Iran"},
	"Yongbyon":     {"North Korea"},
	"Dimona":       {"Israel"},
	"Bushehr":      {"Iran"},
	"Zaporizhzhia": {"Ukraine"},
	"Chernobyl":    {"Ukraine"},
	"Fukushima":    {"Japan"},
}
