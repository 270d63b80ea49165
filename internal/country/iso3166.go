package country

// iso3166 is the ISO 3166-1 country list, ordered by alpha-3 code.
var iso3166 = []Country{
	{Alpha2: "AW", Alpha3: "ABW", Numeric: "533", Name: "Aruba"},
	{Alpha2: "AF", Alpha3: "AFG", Numeric: "004", Name: "Afghanistan", OfficialName: "Islamic Republic of Afghanistan"},
	{Alpha2: "AO", Alpha3: "AGO", Numeric: "024", Name: "Angola", OfficialName: "Republic of Angola"},
	{Alpha2: "AI", Alpha3: "AIA", Numeric: "660", Name: "Anguilla"},
	{Alpha2: "AX", Alpha3: "ALA", Numeric: "248", Name: "Åland Islands"},
	{Alpha2: "AL", Alpha3: "ALB", Numeric: "008", Name: "Albania", OfficialName: "Republic of Albania"},
	{Alpha2: "AD", Alpha3: "AND", Numeric: "020", Name: "Andorra", OfficialName: "Principality of Andorra"},
	{Alpha2: "AE", Alpha3: "ARE", Numeric: "784", Name: "United Arab Emirates"},
	{Alpha2: "AR", Alpha3: "ARG", Numeric: "032", Name: "Argentina", OfficialName: "Argentine Republic"},
	{Alpha2: "AM", Alpha3: "ARM", Numeric: "051", Name: "Armenia", OfficialName: "Republic of Armenia"},
	{Alpha2: "AS", Alpha3: "ASM", Numeric: "016", Name: "American Samoa"},
	{Alpha2: "AQ", Alpha3: "ATA", Numeric: "010", Name: "Antarctica"},
	{Alpha2: "TF", Alpha3: "ATF", Numeric: "260", Name: "French Southern Territories"},
	{Alpha2: "AG", Alpha3: "ATG", Numeric: "028", Name: "Antigua and Barbuda"},
	{Alpha2: "AU", Alpha3: "AUS", Numeric: "036", Name: "Australia"},
	{Alpha2: "AT", Alpha3: "AUT", Numeric: "040", Name: "Austria", OfficialName: "Republic of Austria"},
	{Alpha2: "AZ", Alpha3: "AZE", Numeric: "031", Name: "Azerbaijan", OfficialName: "Republic of Azerbaijan"},
	{Alpha2: "BI", Alpha3: "BDI", Numeric: "108", Name: "Burundi", OfficialName: "Republic of Burundi"},
	{Alpha2: "BE", Alpha3: "BEL", Numeric: "056", Name: "Belgium", OfficialName: "Kingdom of Belgium"},
	{Alpha2: "BJ", Alpha3: "BEN", Numeric: "204", Name: "Benin", OfficialName: "Republic of Benin"},
	{Alpha2: "BQ", Alpha3: "BES", Numeric: "535", Name: "Bonaire, Sint Eustatius and Saba"},
	{Alpha2: "BF", Alpha3: "BFA", Numeric: "854", Name: "Burkina Faso"},
	{Alpha2: "BD", Alpha3: "BGD", Numeric: "050", Name: "Bangladesh", OfficialName: "People's Republic of Bangladesh"},
	{Alpha2: "BG", Alpha3: "BGR", Numeric: "100", Name: "Bulgaria", OfficialName: "Republic of Bulgaria"},
	{Alpha2: "BH", Alpha3: "BHR", Numeric: "048", Name: "Bahrain", OfficialName: "Kingdom of Bahrain"},
	{Alpha2: "BS", Alpha3: "BHS", Numeric: "044", Name: "Bahamas", OfficialName: "Commonwealth of the Bahamas"},
	{Alpha2: "BA", Alpha3: "BIH", Numeric: "070", Name: "Bosnia and Herzegovina", OfficialName: "Republic of Bosnia and Herzegovina"},
	{Alpha2: "BL", Alpha3: "BLM", Numeric: "652", Name: "Saint Barthélemy"},
	{Alpha2: "BY", Alpha3: "BLR", Numeric: "112", Name: "Belarus", OfficialName: "Republic of Belarus"},
	{Alpha2: "BZ", Alpha3: "BLZ", Numeric: "084", Name: "Belize"},
	{Alpha2: "BM", Alpha3: "BMU", Numeric: "060", Name: "Bermuda"},
	{Alpha2: "BO", Alpha3: "BOL", Numeric: "068", Name: "Bolivia, Plurinational State of", OfficialName: "Plurinational State of Bolivia", CommonName: "Bolivia"},
	{Alpha2: "BR", Alpha3: "BRA", Numeric: "076", Name: "Brazil", OfficialName: "Federative Republic of Brazil"},
	{Alpha2: "BB", Alpha3: "BRB", Numeric: "052", Name: "Barbados"},
	{Alpha2: "BN", Alpha3: "BRN", Numeric: "096", Name: "Brunei Darussalam"},
	{Alpha2: "BT", Alpha3: "BTN", Numeric: "064", Name: "Bhutan", OfficialName: "Kingdom of Bhutan"},
	{Alpha2: "BV", Alpha3: "BVT", Numeric: "074", Name: "Bouvet Island"},
	{Alpha2: "BW", Alpha3: "BWA", Numeric: "072", Name: "Botswana", OfficialName: "Republic of Botswana"},
	{Alpha2: "CF", Alpha3: "CAF", Numeric: "140", Name: "Central African Republic"},
	{Alpha2: "CA", Alpha3: "CAN", Numeric: "124", Name: "Canada"},
	{Alpha2: "CC", Alpha3: "CCK", Numeric: "166", Name: "Cocos (Keeling) Islands"},
	{Alpha2: "CH", Alpha3: "CHE", Numeric: "756", Name: "Switzerland", OfficialName: "Swiss Confederation"},
	{Alpha2: "CL", Alpha3: "CHL", Numeric: "152", Name: "Chile", OfficialName: "Republic of Chile"},
	{Alpha2: "CN", Alpha3: "CHN", Numeric: "156", Name: "China", OfficialName: "People's Republic of China"},
	{Alpha2: "CI", Alpha3: "CIV", Numeric: "384", Name: "Côte d'Ivoire", OfficialName: "Republic of Côte d'Ivoire"},
	{Alpha2: "CM", Alpha3: "CMR", Numeric: "120", Name: "Cameroon", OfficialName: "Republic of Cameroon"},
	{Alpha2: "CD", Alpha3: "COD", Numeric: "180", Name: "Congo, The Democratic Republic of the"},
	{Alpha2: "CG", Alpha3: "COG", Numeric: "178", Name: "Congo", OfficialName: "Republic of the Congo"},
	{Alpha2: "CK", Alpha3: "COK", Numeric: "184", Name: "Cook Islands"},
	{Alpha2: "CO", Alpha3: "COL", Numeric: "170", Name: "Colombia", OfficialName: "Republic of Colombia"},
	{Alpha2: "KM", Alpha3: "COM", Numeric: "174", Name: "Comoros", OfficialName: "Union of the Comoros"},
	{Alpha2: "CV", Alpha3: "CPV", Numeric: "132", Name: "Cabo Verde", OfficialName: "Republic of Cabo Verde"},
	{Alpha2: "CR", Alpha3: "CRI", Numeric: "188", Name: "Costa Rica", OfficialName: "Republic of Costa Rica"},
	{Alpha2: "CU", Alpha3: "CUB", Numeric: "192", Name: "Cuba", OfficialName: "Republic of Cuba"},
	{Alpha2: "CW", Alpha3: "CUW", Numeric: "531", Name: "Curaçao", OfficialName: "Curaçao"},
	{Alpha2: "CX", Alpha3: "CXR", Numeric: "162", Name: "Christmas Island"},
	{Alpha2: "KY", Alpha3: "CYM", Numeric: "136", Name: "Cayman Islands"},
	{Alpha2: "CY", Alpha3: "CYP", Numeric: "196", Name: "Cyprus", OfficialName: "Republic of Cyprus"},
	{Alpha2: "CZ", Alpha3: "CZE", Numeric: "203", Name: "Czechia", OfficialName: "Czech Republic"},
	{Alpha2: "DE", Alpha3: "DEU", Numeric: "276", Name: "Germany", OfficialName: "Federal Republic of Germany"},
	{Alpha2: "DJ", Alpha3: "DJI", Numeric: "262", Name: "Djibouti", OfficialName: "Republic of Djibouti"},
	{Alpha2: "DM", Alpha3: "DMA", Numeric: "212", Name: "Dominica", OfficialName: "Commonwealth of Dominica"},
	{Alpha2: "DK", Alpha3: "DNK", Numeric: "208", Name: "Denmark", OfficialName: "Kingdom of Denmark"},
	{Alpha2: "DO", Alpha3: "DOM", Numeric: "214", Name: "Dominican Republic"},
	{Alpha2: "DZ", Alpha3: "DZA", Numeric: "012", Name: "Algeria", OfficialName: "People's Democratic Republic of Algeria"},
	{Alpha2: "EC", Alpha3: "ECU", Numeric: "218", Name: "Ecuador", OfficialName: "Republic of Ecuador"},
	{Alpha2: "EG", Alpha3: "EGY", Numeric: "818", Name: "Egypt", OfficialName: "Arab Republic of Egypt"},
	{Alpha2: "ER", Alpha3: "ERI", Numeric: "232", Name: "Eritrea", OfficialName: "the State of Eritrea"},
	{Alpha2: "EH", Alpha3: "ESH", Numeric: "732", Name: "Western Sahara"},
	{Alpha2: "ES", Alpha3: "ESP", Numeric: "724", Name: "Spain", OfficialName: "Kingdom of Spain"},
	{Alpha2: "EE", Alpha3: "EST", Numeric: "233", Name: "Estonia", OfficialName: "Republic of Estonia"},
	{Alpha2: "ET", Alpha3: "ETH", Numeric: "231", Name: "Ethiopia", OfficialName: "Federal Democratic Republic of Ethiopia"},
	{Alpha2: "FI", Alpha3: "FIN", Numeric: "246", Name: "Finland", OfficialName: "Republic of Finland"},
	{Alpha2: "FJ", Alpha3: "FJI", Numeric: "242", Name: "Fiji", OfficialName: "Republic of Fiji"},
	{Alpha2: "FK", Alpha3: "FLK", Numeric: "238", Name: "Falkland Islands (Malvinas)"},
	{Alpha2: "FR", Alpha3: "FRA", Numeric: "250", Name: "France", OfficialName: "French Republic"},
	{Alpha2: "FO", Alpha3: "FRO", Numeric: "234", Name: "Faroe Islands"},
	{Alpha2: "FM", Alpha3: "FSM", Numeric: "583", Name: "Micronesia, Federated States of", OfficialName: "Federated States of Micronesia"},
	{Alpha2: "GA", Alpha3: "GAB", Numeric: "266", Name: "Gabon", OfficialName: "Gabonese Republic"},
	{Alpha2: "GB", Alpha3: "GBR", Numeric: "826", Name: "United Kingdom", OfficialName: "United Kingdom of Great Britain and Northern Ireland"},
	{Alpha2: "GE", Alpha3: "GEO", Numeric: "268", Name: "Georgia"},
	{Alpha2: "GG", Alpha3: "GGY", Numeric: "831", Name: "Guernsey"},
	{Alpha2: "GH", Alpha3: "GHA", Numeric: "288", Name: "Ghana", OfficialName: "Republic of Ghana"},
	{Alpha2: "GI", Alpha3: "GIB", Numeric: "292", Name: "Gibraltar"},
	{Alpha2: "GN", Alpha3: "GIN", Numeric: "324", Name: "Guinea", OfficialName: "Republic of Guinea"},
	{Alpha2: "GP", Alpha3: "GLP", Numeric: "312", Name: "Guadeloupe"},
	{Alpha2: "GM", Alpha3: "GMB", Numeric: "270", Name: "Gambia", OfficialName: "Republic of the Gambia"},
	{Alpha2: "GW", Alpha3: "GNB", Numeric: "624", Name: "Guinea-Bissau", OfficialName: "Republic of Guinea-Bissau"},
	{Alpha2: "GQ", Alpha3: "GNQ", Numeric: "226", Name: "Equatorial Guinea", OfficialName: "Republic of Equatorial Guinea"},
	{Alpha2: "GR", Alpha3: "GRC", Numeric: "300", Name: "Greece", OfficialName: "Hellenic Republic"},
	{Alpha2: "GD", Alpha3: "GRD", Numeric: "308", Name: "Grenada"},
	{Alpha2: "GL", Alpha3: "GRL", Numeric: "304", Name: "Greenland"},
	{Alpha2: "GT", Alpha3: "GTM", Numeric: "320", Name: "Guatemala", OfficialName: "Republic of Guatemala"},
	{Alpha2: "GF", Alpha3: "GUF", Numeric: "254", Name: "French Guiana"},
	{Alpha2: "GU", Alpha3: "GUM", Numeric: "316", Name: "Guam"},
	{Alpha2: "GY", Alpha3: "GUY", Numeric: "328", Name: "Guyana", OfficialName: "Republic of Guyana"},
	{Alpha2: "HK", Alpha3: "HKG", Numeric: "344", Name: "Hong Kong", OfficialName: "Hong Kong Special Administrative Region of China"},
	{Alpha2: "HM", Alpha3: "HMD", Numeric: "334", Name: "Heard Island and McDonald Islands"},
	{Alpha2: "HN", Alpha3: "HND", Numeric: "340", Name: "Honduras", OfficialName: "Republic of Honduras"},
	{Alpha2: "HR", Alpha3: "HRV", Numeric: "191", Name: "Croatia", OfficialName: "Republic of Croatia"},
	{Alpha2: "HT", Alpha3: "HTI", Numeric: "332", Name: "Haiti", OfficialName: "Republic of Haiti"},
	{Alpha2: "HU", Alpha3: "HUN", Numeric: "348", Name: "Hungary"},
	{Alpha2: "ID", Alpha3: "IDN", Numeric: "360", Name: "Indonesia", OfficialName: "Republic of Indonesia"},
	{Alpha2: "IM", Alpha3: "IMN", Numeric: "833", Name: "Isle of Man"},
	{Alpha2: "IN", Alpha3: "IND", Numeric: "356", Name: "India", OfficialName: "Republic of India"},
	{Alpha2: "IO", Alpha3: "IOT", Numeric: "086", Name: "British Indian Ocean Territory"},
	{Alpha2: "IE", Alpha3: "IRL", Numeric: "372", Name: "Ireland"},
	{Alpha2: "IR", Alpha3: "IRN", Numeric: "364", Name: "Iran, Islamic Republic of", OfficialName: "Islamic Republic of Iran", CommonName: "Iran"},
	{Alpha2: "IQ", Alpha3: "IRQ", Numeric: "368", Name: "Iraq", OfficialName: "Republic of Iraq"},
	{Alpha2: "IS", Alpha3: "ISL", Numeric: "352", Name: "Iceland", OfficialName: "Republic of Iceland"},
	{Alpha2: "IL", Alpha3: "ISR", Numeric: "376", Name: "Israel", OfficialName: "State of Israel"},
	{Alpha2: "IT", Alpha3: "ITA", Numeric: "380", Name: "Italy", OfficialName: "Italian Republic"},
	{Alpha2: "JM", Alpha3: "JAM", Numeric: "388", Name: "Jamaica"},
	{Alpha2: "JE", Alpha3: "JEY", Numeric: "832", Name: "Jersey"},
	{Alpha2: "JO", Alpha3: "JOR", Numeric: "400", Name: "Jordan", OfficialName: "Hashemite Kingdom of Jordan"},
	{Alpha2: "JP", Alpha3: "JPN", Numeric: "392", Name: "Japan"},
	{Alpha2: "KZ", Alpha3: "KAZ", Numeric: "398", Name: "Kazakhstan", OfficialName: "Republic of Kazakhstan"},
	{Alpha2: "KE", Alpha3: "KEN", Numeric: "404", Name: "Kenya", OfficialName: "Republic of Kenya"},
	{Alpha2: "KG", Alpha3: "KGZ", Numeric: "417", Name: "Kyrgyzstan", OfficialName: "Kyrgyz Republic"},
	{Alpha2: "KH", Alpha3: "KHM", Numeric: "116", Name: "Cambodia", OfficialName: "Kingdom of Cambodia"},
	{Alpha2: "KI", Alpha3: "KIR", Numeric: "296", Name: "Kiribati", OfficialName: "Republic of Kiribati"},
	{Alpha2: "KN", Alpha3: "KNA", Numeric: "659", Name: "Saint Kitts and Nevis"},
	{Alpha2: "KR", Alpha3: "KOR", Numeric: "410", Name: "Korea, Republic of", CommonName: "South Korea"},
	{Alpha2: "KW", Alpha3: "KWT", Numeric: "414", Name: "Kuwait", OfficialName: "State of Kuwait"},
	{Alpha2: "LA", Alpha3: "LAO", Numeric: "418", Name: "Lao People's Democratic Republic", CommonName: "Laos"},
	{Alpha2: "LB", Alpha3: "LBN", Numeric: "422", Name: "Lebanon", OfficialName: "Lebanese Republic"},
	{Alpha2: "LR", Alpha3: "LBR", Numeric: "430", Name: "Liberia", OfficialName: "Republic of Liberia"},
	{Alpha2: "LY", Alpha3: "LBY", Numeric: "434", Name: "Libya", OfficialName: "Libya"},
	{Alpha2: "LC", Alpha3: "LCA", Numeric: "662", Name: "Saint Lucia"},
	{Alpha2: "LI", Alpha3: "LIE", Numeric: "438", Name: "Liechtenstein", OfficialName: "Principality of Liechtenstein"},
	{Alpha2: "LK", Alpha3: "LKA", Numeric: "144", Name: "Sri Lanka", OfficialName: "Democratic Socialist Republic of Sri Lanka"},
	{Alpha2: "LS", Alpha3: "LSO", Numeric: "426", Name: "Lesotho", OfficialName: "Kingdom of Lesotho"},
	{Alpha2: "LT", Alpha3: "LTU", Numeric: "440", Name: "Lithuania", OfficialName: "Republic of Lithuania"},
	{Alpha2: "LU", Alpha3: "LUX", Numeric: "442", Name: "Luxembourg", OfficialName: "Grand Duchy of Luxembourg"},
	{Alpha2: "LV", Alpha3: "LVA", Numeric: "428", Name: "Latvia", OfficialName: "Republic of Latvia"},
	{Alpha2: "MO", Alpha3: "MAC", Numeric: "446", Name: "Macao", OfficialName: "Macao Special Administrative Region of China"},
	{Alpha2: "MF", Alpha3: "MAF", Numeric: "663", Name: "Saint Martin (French part)"},
	{Alpha2: "MA", Alpha3: "MAR", Numeric: "504", Name: "Morocco", OfficialName: "Kingdom of Morocco"},
	{Alpha2: "MC", Alpha3: "MCO", Numeric: "492", Name: "Monaco", OfficialName: "Principality of Monaco"},
	{Alpha2: "MD", Alpha3: "MDA", Numeric: "498", Name: "Moldova, Republic of", OfficialName: "Republic of Moldova", CommonName: "Moldova"},
	{Alpha2: "MG", Alpha3: "MDG", Numeric: "450", Name: "Madagascar", OfficialName: "Republic of Madagascar"},
	{Alpha2: "MV", Alpha3: "MDV", Numeric: "462", Name: "Maldives", OfficialName: "Republic of Maldives"},
	{Alpha2: "MX", Alpha3: "MEX", Numeric: "484", Name: "Mexico", OfficialName: "United Mexican States"},
	{Alpha2: "MH", Alpha3: "MHL", Numeric: "584", Name: "Marshall Islands", OfficialName: "Republic of the Marshall Islands"},
	{Alpha2: "MK", Alpha3: "MKD", Numeric: "807", Name: "North Macedonia", OfficialName: "Republic of North Macedonia"},
	{Alpha2: "ML", Alpha3: "MLI", Numeric: "466", Name: "Mali", OfficialName: "Republic of Mali"},
	{Alpha2: "MT", Alpha3: "MLT", Numeric: "470", Name: "Malta", OfficialName: "Republic of Malta"},
	{Alpha2: "MM", Alpha3: "MMR", Numeric: "104", Name: "Myanmar", OfficialName: "Republic of Myanmar"},
	{Alpha2: "ME", Alpha3: "MNE", Numeric: "499", Name: "Montenegro"},
	{Alpha2: "MN", Alpha3: "MNG", Numeric: "496", Name: "Mongolia"},
	{Alpha2: "MP", Alpha3: "MNP", Numeric: "580", Name: "Northern Mariana Islands", OfficialName: "Commonwealth of the Northern Mariana Islands"},
	{Alpha2: "MZ", Alpha3: "MOZ", Numeric: "508", Name: "Mozambique", OfficialName: "Republic of Mozambique"},
	{Alpha2: "MR", Alpha3: "MRT", Numeric: "478", Name: "Mauritania", OfficialName: "Islamic Republic of Mauritania"},
	{Alpha2: "MS", Alpha3: "MSR", Numeric: "500", Name: "Montserrat"},
	{Alpha2: "MQ", Alpha3: "MTQ", Numeric: "474", Name: "Martinique"},
	{Alpha2: "MU", Alpha3: "MUS", Numeric: "480", Name: "Mauritius", OfficialName: "Republic of Mauritius"},
	{Alpha2: "MW", Alpha3: "MWI", Numeric: "454", Name: "Malawi", OfficialName: "Republic of Malawi"},
	{Alpha2: "MY", Alpha3: "MYS", Numeric: "458", Name: "Malaysia"},
	{Alpha2: "YT", Alpha3: "MYT", Numeric: "175", Name: "Mayotte"},
	{Alpha2: "NA", Alpha3: "NAM", Numeric: "516", Name: "Namibia", OfficialName: "Republic of Namibia"},
	{Alpha2: "NC", Alpha3: "NCL", Numeric: "540", Name: "New Caledonia"},
	{Alpha2: "NE", Alpha3: "NER", Numeric: "562", Name: "Niger", OfficialName: "Republic of the Niger"},
	{Alpha2: "NF", Alpha3: "NFK", Numeric: "574", Name: "Norfolk Island"},
	{Alpha2: "NG", Alpha3: "NGA", Numeric: "566", Name: "Nigeria", OfficialName: "Federal Republic of Nigeria"},
	{Alpha2: "NI", Alpha3: "NIC", Numeric: "558", Name: "Nicaragua", OfficialName: "Republic of Nicaragua"},
	{Alpha2: "NU", Alpha3: "NIU", Numeric: "570", Name: "Niue", OfficialName: "Niue"},
	{Alpha2: "NL", Alpha3: "NLD", Numeric: "528", Name: "Netherlands", OfficialName: "Kingdom of the Netherlands"},
	{Alpha2: "NO", Alpha3: "NOR", Numeric: "578", Name: "Norway", OfficialName: "Kingdom of Norway"},
	{Alpha2: "NP", Alpha3: "NPL", Numeric: "524", Name: "Nepal", OfficialName: "Federal Democratic Republic of Nepal"},
	{Alpha2: "NR", Alpha3: "NRU", Numeric: "520", Name: "Nauru", OfficialName: "Republic of Nauru"},
	{Alpha2: "NZ", Alpha3: "NZL", Numeric: "554", Name: "New Zealand"},
	{Alpha2: "OM", Alpha3: "OMN", Numeric: "512", Name: "Oman", OfficialName: "Sultanate of Oman"},
	{Alpha2: "PK", Alpha3: "PAK", Numeric: "586", Name: "Pakistan", OfficialName: "Islamic Republic of Pakistan"},
	{Alpha2: "PA", Alpha3: "PAN", Numeric: "591", Name: "Panama", OfficialName: "Republic of Panama"},
	{Alpha2: "PN", Alpha3: "PCN", Numeric: "612", Name: "Pitcairn"},
	{Alpha2: "PE", Alpha3: "PER", Numeric: "604", Name: "Peru", OfficialName: "Republic of Peru"},
	{Alpha2: "PH", Alpha3: "PHL", Numeric: "608", Name: "Philippines", OfficialName: "Republic of the Philippines"},
	{Alpha2: "PW", Alpha3: "PLW", Numeric: "585", Name: "Palau", OfficialName: "Republic of Palau"},
	{Alpha2: "PG", Alpha3: "PNG", Numeric: "598", Name: "Papua New Guinea", OfficialName: "Independent State of Papua New Guinea"},
	{Alpha2: "PL", Alpha3: "POL", Numeric: "616", Name: "Poland", OfficialName: "Republic of Poland"},
	{Alpha2: "PR", Alpha3: "PRI", Numeric: "630", Name: "Puerto Rico"},
	{Alpha2: "KP", Alpha3: "PRK", Numeric: "408", Name: "Korea, Democratic People's Republic of", OfficialName: "Democratic People's Republic of Korea", CommonName: "North Korea"},
	{Alpha2: "PT", Alpha3: "PRT", Numeric: "620", Name: "Portugal", OfficialName: "Portuguese Republic"},
	{Alpha2: "PY", Alpha3: "PRY", Numeric: "600", Name: "Paraguay", OfficialName: "Republic of Paraguay"},
	{Alpha2: "PS", Alpha3: "PSE", Numeric: "275", Name: "Palestine, State of", OfficialName: "the State of Palestine"},
	{Alpha2: "PF", Alpha3: "PYF", Numeric: "258", Name: "French Polynesia"},
	{Alpha2: "QA", Alpha3: "QAT", Numeric: "634", Name: "Qatar", OfficialName: "State of Qatar"},
	{Alpha2: "RE", Alpha3: "REU", Numeric: "638", Name: "Réunion"},
	{Alpha2: "RO", Alpha3: "ROU", Numeric: "642", Name: "Romania"},
	{Alpha2: "RU", Alpha3: "RUS", Numeric: "643", Name: "Russian Federation"},
	{Alpha2: "RW", Alpha3: "RWA", Numeric: "646", Name: "Rwanda", OfficialName: "Rwandese Republic"},
	{Alpha2: "SA", Alpha3: "SAU", Numeric: "682", Name: "Saudi Arabia", OfficialName: "Kingdom of Saudi Arabia"},
	{Alpha2: "SD", Alpha3: "SDN", Numeric: "729", Name: "Sudan", OfficialName: "Republic of the Sudan"},
	{Alpha2: "SN", Alpha3: "SEN", Numeric: "686", Name: "Senegal", OfficialName: "Republic of Senegal"},
	{Alpha2: "SG", Alpha3: "SGP", Numeric: "702", Name: "Singapore", OfficialName: "Republic of Singapore"},
	{Alpha2: "GS", Alpha3: "SGS", Numeric: "239", Name: "South Georgia and the South Sandwich Islands"},
	{Alpha2: "SH", Alpha3: "SHN", Numeric: "654", Name: "Saint Helena, Ascension and Tristan da Cunha"},
	{Alpha2: "SJ", Alpha3: "SJM", Numeric: "744", Name: "Svalbard and Jan Mayen"},
	{Alpha2: "SB", Alpha3: "SLB", Numeric: "090", Name: "Solomon Islands"},
	{Alpha2: "SL", Alpha3: "SLE", Numeric: "694", Name: "Sierra Leone", OfficialName: "Republic of Sierra Leone"},
	{Alpha2: "SV", Alpha3: "SLV", Numeric: "222", Name: "El Salvador", OfficialName: "Republic of El Salvador"},
	{Alpha2: "SM", Alpha3: "SMR", Numeric: "674", Name: "San Marino", OfficialName: "Republic of San Marino"},
	{Alpha2: "SO", Alpha3: "SOM", Numeric: "706", Name: "Somalia", OfficialName: "Federal Republic of Somalia"},
	{Alpha2: "PM", Alpha3: "SPM", Numeric: "666", Name: "Saint Pierre and Miquelon"},
	{Alpha2: "RS", Alpha3: "SRB", Numeric: "688", Name: "Serbia", OfficialName: "Republic of Serbia"},
	{Alpha2: "SS", Alpha3: "SSD", Numeric: "728", Name: "South Sudan", OfficialName: "Republic of South Sudan"},
	{Alpha2: "ST", Alpha3: "STP", Numeric: "678", Name: "Sao Tome and Principe", OfficialName: "Democratic Republic of Sao Tome and Principe"},
	{Alpha2: "SR", Alpha3: "SUR", Numeric: "740", Name: "Suriname", OfficialName: "Republic of Suriname"},
	{Alpha2: "SK", Alpha3: "SVK", Numeric: "703", Name: "Slovakia", OfficialName: "Slovak Republic"},
	{Alpha2: "SI", Alpha3: "SVN", Numeric: "705", Name: "Slovenia", OfficialName: "Republic of Slovenia"},
	{Alpha2: "SE", Alpha3: "SWE", Numeric: "752", Name: "Sweden", OfficialName: "Kingdom of Sweden"},
	{Alpha2: "SZ", Alpha3: "SWZ", Numeric: "748", Name: "Eswatini", OfficialName: "Kingdom of Eswatini"},
	{Alpha2: "SX", Alpha3: "SXM", Numeric: "534", Name: "Sint Maarten (Dutch part)", OfficialName: "Sint Maarten (Dutch part)"},
	{Alpha2: "SC", Alpha3: "SYC", Numeric: "690", Name: "Seychelles", OfficialName: "Republic of Seychelles"},
	{Alpha2: "SY", Alpha3: "SYR", Numeric: "760", Name: "Syrian Arab Republic", CommonName: "Syria"},
	{Alpha2: "TC", Alpha3: "TCA", Numeric: "796", Name: "Turks and Caicos Islands"},
	{Alpha2: "TD", Alpha3: "TCD", Numeric: "148", Name: "Chad", OfficialName: "Republic of Chad"},
	{Alpha2: "TG", Alpha3: "TGO", Numeric: "768", Name: "Togo", OfficialName: "Togolese Republic"},
	{Alpha2: "TH", Alpha3: "THA", Numeric: "764", Name: "Thailand", OfficialName: "Kingdom of Thailand"},
	{Alpha2: "TJ", Alpha3: "TJK", Numeric: "762", Name: "Tajikistan", OfficialName: "Republic of Tajikistan"},
	{Alpha2: "TK", Alpha3: "TKL", Numeric: "772", Name: "Tokelau"},
	{Alpha2: "TM", Alpha3: "TKM", Numeric: "795", Name: "Turkmenistan"},
	{Alpha2: "TL", Alpha3: "TLS", Numeric: "626", Name: "Timor-Leste", OfficialName: "Democratic Republic of Timor-Leste"},
	{Alpha2: "TO", Alpha3: "TON", Numeric: "776", Name: "Tonga", OfficialName: "Kingdom of Tonga"},
	{Alpha2: "TT", Alpha3: "TTO", Numeric: "780", Name: "Trinidad and Tobago", OfficialName: "Republic of Trinidad and Tobago"},
	{Alpha2: "TN", Alpha3: "TUN", Numeric: "788", Name: "Tunisia", OfficialName: "Republic of Tunisia"},
	{Alpha2: "TR", Alpha3: "TUR", Numeric: "792", Name: "Türkiye", OfficialName: "Republic of Türkiye"},
	{Alpha2: "TV", Alpha3: "TUV", Numeric: "798", Name: "Tuvalu"},
	{Alpha2: "TW", Alpha3: "TWN", Numeric: "158", Name: "Taiwan, Province of China", CommonName: "Taiwan"},
	{Alpha2: "TZ", Alpha3: "TZA", Numeric: "834", Name: "Tanzania, United Republic of", OfficialName: "United Republic of Tanzania", CommonName: "Tanzania"},
	{Alpha2: "UG", Alpha3: "UGA", Numeric: "800", Name: "Uganda", OfficialName: "Republic of Uganda"},
	{Alpha2: "UA", Alpha3: "UKR", Numeric: "804", Name: "Ukraine"},
	{Alpha2: "UM", Alpha3: "UMI", Numeric: "581", Name: "United States Minor Outlying Islands"},
	{Alpha2: "UY", Alpha3: "URY", Numeric: "858", Name: "Uruguay", OfficialName: "Eastern Republic of Uruguay"},
	{Alpha2: "US", Alpha3: "USA", Numeric: "840", Name: "United States", OfficialName: "United States of America"},
	{Alpha2: "UZ", Alpha3: "UZB", Numeric: "860", Name: "Uzbekistan", OfficialName: "Republic of Uzbekistan"},
	{Alpha2: "VA", Alpha3: "VAT", Numeric: "336", Name: "Holy See (Vatican City State)"},
	{Alpha2: "VC", Alpha3: "VCT", Numeric: "670", Name: "Saint Vincent and the Grenadines"},
	{Alpha2: "VE", Alpha3: "VEN", Numeric: "862", Name: "Venezuela, Bolivarian Republic of", OfficialName: "Bolivarian Republic of Venezuela", CommonName: "Venezuela"},
	{Alpha2: "VG", Alpha3: "VGB", Numeric: "092", Name: "Virgin Islands, British", OfficialName: "British Virgin Islands"},
	{Alpha2: "VI", Alpha3: "VIR", Numeric: "850", Name: "Virgin Islands, U.S.", OfficialName: "Virgin Islands of the United States"},
	{Alpha2: "VN", Alpha3: "VNM", Numeric: "704", Name: "Viet Nam", OfficialName: "Socialist Republic of Viet Nam", CommonName: "Vietnam"},
	{Alpha2: "VU", Alpha3: "VUT", Numeric: "548", Name: "Vanuatu", OfficialName: "Republic of Vanuatu"},
	{Alpha2: "WF", Alpha3: "WLF", Numeric: "876", Name: "Wallis and Futuna"},
	{Alpha2: "WS", Alpha3: "WSM", Numeric: "882", Name: "Samoa", OfficialName: "Independent State of Samoa"},
	{Alpha2: "YE", Alpha3: "YEM", Numeric: "887", Name: "Yemen", OfficialName: "Republic of Yemen"},
	{Alpha2: "ZA", Alpha3: "ZAF", Numeric: "710", Name: "South Africa", OfficialName: "Republic of South Africa"},
	{Alpha2: "ZM", Alpha3: "ZMB", Numeric: "894", Name: "Zambia", OfficialName: "Republic of Zambia"},
	{Alpha2: "ZW", Alpha3: "ZWE", Numeric: "716", Name: "Zimbabwe", OfficialName: "Republic of Zimbabwe"},
}
