package gazetteer

// Countries is the priority country list with coordinates and accepted
// textual variants. Order matters: when two countries claim the same
// variant, the one listed first owns it.
var Countries = []Entry{
	{Name: "United States", Lat: 38.9, Lon: -77.0, Variants: []string{"united states", "usa", "u.s", "america", "american", "washington", "white house", "pentagon"}},
	{Name: "China", Lat: 39.9, Lon: 116.4, Variants: []string{"china", "chinese", "beijing", "prc"}},
	{Name: "Russia", Lat: 55.8, Lon: 37.6, Variants: []string{"russia", "russian", "moscow", "kremlin"}},
	{Name: "United Kingdom", Lat: 51.5, Lon: -0.1, Variants: []string{"united kingdom", "uk", "britain", "british", "england", "london"}},
	{Name: "Germany", Lat: 52.5, Lon: 13.4, Variants: []string{"germany", "german", "berlin"}},
	{Name: "France", Lat: 48.9, Lon: 2.4, Variants: []string{"france", "french", "paris"}},
	{Name: "Japan", Lat: 35.7, Lon: 139.7, Variants: []string{"japan", "japanese", "tokyo"}},
	{Name: "India", Lat: 28.6, Lon: 77.2, Variants: []string{"india", "indian", "new delhi"}},
	{Name: "Ukraine", Lat: 50.5, Lon: 30.5, Variants: []string{"ukraine", "ukrainian", "kyiv", "kiev"}},
	{Name: "Israel", Lat: 31.8, Lon: 35.2, Variants: []string{"israel", "israeli", "jerusalem", "tel aviv"}},
	{Name: "Palestine", Lat: 31.4, Lon: 34.4, Variants: []string{"palestine", "palestinian", "gaza", "west bank"}},
	{Name: "Iran", Lat: 35.7, Lon: 51.4, Variants: []string{"iran", "iranian", "tehran"}},
	{Name: "North Korea", Lat: 39.0, Lon: 125.8, Variants: []string{"north korea", "dprk", "pyongyang"}},
	{Name: "South Korea", Lat: 37.6, Lon: 127.0, Variants: []string{"south korea", "korea", "korean", "seoul"}},
	{Name: "Taiwan", Lat: 25.0, Lon: 121.6, Variants: []string{"taiwan", "taiwanese", "taipei"}},
	{Name: "Syria", Lat: 33.5, Lon: 36.3, Variants: []string{"syria", "syrian", "damascus"}},
	{Name: "Afghanistan", Lat: 34.5, Lon: 69.2, Variants: []string{"afghanistan", "afghan", "kabul"}},
	{Name: "Iraq", Lat: 33.3, Lon: 44.4, Variants: []string{"iraq", "iraqi", "baghdad"}},
	{Name: "Yemen", Lat: 15.4, Lon: 44.2, Variants: []string{"yemen", "yemeni", "sanaa", "houthi"}},
	{Name: "Canada", Lat: 45.4, Lon: -75.7, Variants: []string{"canada", "canadian", "ottawa"}},
	{Name: "Australia", Lat: -35.3, Lon: 149.1, Variants: []string{"australia", "australian", "canberra", "sydney"}},
	{Name: "Brazil", Lat: -15.8, Lon: -47.9, Variants: []string{"brazil", "brazilian", "brasilia"}},
	{Name: "Mexico", Lat: 19.4, Lon: -99.1, Variants: []string{"mexico", "mexican", "mexico city"}},
	{Name: "Italy", Lat: 41.9, Lon: 12.5, Variants: []string{"italy", "italian", "rome"}},
	{Name: "Spain", Lat: 40.4, Lon: -3.7, Variants: []string{"spain", "spanish", "madrid"}},
	{Name: "Netherlands", Lat: 52.4, Lon: 4.9, Variants: []string{"netherlands", "dutch", "amsterdam", "the hague"}},
	{Name: "Switzerland", Lat: 46.9, Lon: 7.4, Variants: []string{"switzerland", "swiss", "geneva", "zurich"}},
	{Name: "Sweden", Lat: 59.3, Lon: 18.1, Variants: []string{"sweden", "swedish", "stockholm"}},
	{Name: "Norway", Lat: 59.9, Lon: 10.8, Variants: []string{"norway", "norwegian", "oslo"}},
	{Name: "Poland", Lat: 52.2, Lon: 21.0, Variants: []string{"poland", "polish", "warsaw"}},
	{Name: "Turkey", Lat: 39.9, Lon: 32.9, Variants: []string{"turkey", "turkish", "ankara", "istanbul"}},
	{Name: "Saudi Arabia", Lat: 24.7, Lon: 46.7, Variants: []string{"saudi arabia", "saudi", "riyadh"}},
	{Name: "United Arab Emirates", Lat: 24.5, Lon: 54.4, Variants: []string{"united arab emirates", "uae", "emirates", "dubai", "abu dhabi"}},
	{Name: "Qatar", Lat: 25.3, Lon: 51.5, Variants: []string{"qatar", "qatari", "doha"}},
	{Name: "Egypt", Lat: 30.0, Lon: 31.2, Variants: []string{"egypt", "egyptian", "cairo"}},
	{Name: "South Africa", Lat: -25.7, Lon: 28.2, Variants: []string{"south africa", "south african", "pretoria", "johannesburg"}},
	{Name: "Nigeria", Lat: 9.1, Lon: 7.5, Variants: []string{"nigeria", "nigerian", "abuja", "lagos"}},
	{Name: "Ethiopia", Lat: 9.0, Lon: 38.7, Variants: []string{"ethiopia", "ethiopian", "addis ababa"}},
	{Name: "Sudan", Lat: 15.6, Lon: 32.5, Variants: []string{"sudan", "sudanese", "khartoum"}},
	{Name: "Indonesia", Lat: -6.2, Lon: 106.8, Variants: []string{"indonesia", "indonesian", "jakarta"}},
	{Name: "Singapore", Lat: 1.3, Lon: 103.8, Variants: []string{"singapore", "singaporean"}},
	{Name: "Vietnam", Lat: 21.0, Lon: 105.8, Variants: []string{"vietnam", "vietnamese", "hanoi"}},
	{Name: "Thailand", Lat: 13.8, Lon: 100.5, Variants: []string{"thailand", "thai", "bangkok"}},
	{Name: "Philippines", Lat: 14.6, Lon: 121.0, Variants: []string{"philippines", "filipino", "manila"}},
	{Name: "Malaysia", Lat: 3.1, Lon: 101.7, Variants: []string{"malaysia", "malaysian", "kuala lumpur"}},
	{Name: "Pakistan", Lat: 33.7, Lon: 73.0, Variants: []string{"pakistan", "pakistani", "islamabad"}},
	{Name: "Argentina", Lat: -34.6, Lon: -58.4, Variants: []string{"argentina", "argentine", "buenos aires"}},
	{Name: "Chile", Lat: -33.4, Lon: -70.7, Variants: []string{"chile", "chilean", "santiago"}},
	{Name: "Colombia", Lat: 4.7, Lon: -74.1, Variants: []string{"colombia", "colombian", "bogota"}},
	{Name: "Venezuela", Lat: 10.5, Lon: -66.9, Variants: []string{"venezuela", "venezuelan", "caracas"}},
	{Name: "Chad", Lat: 12.1, Lon: 15.0, Variants: []string{"chad", "chadian", "ndjamena"}},
	{Name: "Panama", Lat: 9.0, Lon: -79.5, Variants: []string{"panama", "panamanian"}},
	{Name: "Greece", Lat: 38.0, Lon: 23.7, Variants: []string{"greece", "greek", "athens"}},
	{Name: "Finland", Lat: 60.2, Lon: 24.9, Variants: []string{"finland", "finnish", "helsinki"}},
}
