package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Country is a static reference entry used to pick an asset's origin or target currency.
type Country struct {
	Name      string `json:"name"`
	Numeric   string `json:"numeric"`
	Alpha2    string `json:"alpha2"`
	Alpha3    string `json:"alpha3"`
	Calling   string `json:"calling"`
	Currency  string `json:"currency"`
	Continent string `json:"continent"`
}

// minPartialNameLength is the shortest query for which a substring match is attempted.
const minPartialNameLength = 4

// countries follows ISO 3166-1. Codes that are not ISO 4217 tender map to the currency in circulation.
var countries = []Country{
	{Name: "Afghanistan", Numeric: "004", Alpha2: "AF", Alpha3: "AFG", Calling: "+93", Currency: "AFN", Continent: "AS"},
	{Name: "Åland Islands", Numeric: "248", Alpha2: "AX", Alpha3: "ALA", Calling: "+358", Currency: "EUR", Continent: "EU"},
	{Name: "Albania", Numeric: "008", Alpha2: "AL", Alpha3: "ALB", Calling: "+355", Currency: "ALL", Continent: "EU"},
	{Name: "Algeria", Numeric: "012", Alpha2: "DZ", Alpha3: "DZA", Calling: "+213", Currency: "DZD", Continent: "AF"},
	{Name: "American Samoa", Numeric: "016", Alpha2: "AS", Alpha3: "ASM", Calling: "+684", Currency: "USD", Continent: "OC"},
	{Name: "Andorra", Numeric: "020", Alpha2: "AD", Alpha3: "AND", Calling: "+376", Currency: "EUR", Continent: "EU"},
	{Name: "Angola", Numeric: "024", Alpha2: "AO", Alpha3: "AGO", Calling: "+244", Currency: "AOA", Continent: "AF"},
	{Name: "Anguilla", Numeric: "660", Alpha2: "AI", Alpha3: "AIA", Calling: "+264", Currency: "XCD", Continent: "NA"},
	{Name: "Antarctica", Numeric: "010", Alpha2: "AQ", Alpha3: "ATA", Calling: "+672", Currency: "AUD", Continent: "AN"},
	{Name: "Antigua and Barbuda", Numeric: "028", Alpha2: "AG", Alpha3: "ATG", Calling: "+268", Currency: "XCD", Continent: "NA"},
	{Name: "Argentina", Numeric: "032", Alpha2: "AR", Alpha3: "ARG", Calling: "+54", Currency: "ARS", Continent: "SA"},
	{Name: "Armenia", Numeric: "051", Alpha2: "AM", Alpha3: "ARM", Calling: "+374", Currency: "AMD", Continent: "AS"},
	{Name: "Aruba", Numeric: "533", Alpha2: "AW", Alpha3: "ABW", Calling: "+297", Currency: "AWG", Continent: "NA"},
	{Name: "Australia", Numeric: "036", Alpha2: "AU", Alpha3: "AUS", Calling: "+61", Currency: "AUD", Continent: "OC"},
	{Name: "Austria", Numeric: "040", Alpha2: "AT", Alpha3: "AUT", Calling: "+43", Currency: "EUR", Continent: "EU"},
	{Name: "Azerbaijan", Numeric: "031", Alpha2: "AZ", Alpha3: "AZE", Calling: "+994", Currency: "AZN", Continent: "AS"},
	{Name: "Bahamas", Numeric: "044", Alpha2: "BS", Alpha3: "BHS", Calling: "+242", Currency: "BSD", Continent: "NA"},
	{Name: "Bahrain", Numeric: "048", Alpha2: "BH", Alpha3: "BHR", Calling: "+973", Currency: "BHD", Continent: "AS"},
	{Name: "Bangladesh", Numeric: "050", Alpha2: "BD", Alpha3: "BGD", Calling: "+880", Currency: "BDT", Continent: "AS"},
	{Name: "Barbados", Numeric: "052", Alpha2: "BB", Alpha3: "BRB", Calling: "+246", Currency: "BBD", Continent: "NA"},
	{Name: "Belarus", Numeric: "112", Alpha2: "BY", Alpha3: "BLR", Calling: "+375", Currency: "BYN", Continent: "EU"},
	{Name: "Belgium", Numeric: "056", Alpha2: "BE", Alpha3: "BEL", Calling: "+32", Currency: "EUR", Continent: "EU"},
	{Name: "Belize", Numeric: "084", Alpha2: "BZ", Alpha3: "BLZ", Calling: "+501", Currency: "BZD", Continent: "NA"},
	{Name: "Benin", Numeric: "204", Alpha2: "BJ", Alpha3: "BEN", Calling: "+229", Currency: "XOF", Continent: "AF"},
	{Name: "Bermuda", Numeric: "060", Alpha2: "BM", Alpha3: "BMU", Calling: "+441", Currency: "BMD", Continent: "NA"},
	{Name: "Bhutan", Numeric: "064", Alpha2: "BT", Alpha3: "BTN", Calling: "+975", Currency: "BTN", Continent: "AS"},
	{Name: "Bolivia, Plurinational State of", Numeric: "068", Alpha2: "BO", Alpha3: "BOL", Calling: "+591", Currency: "BOB", Continent: "SA"},
	{Name: "Bonaire, Sint Eustatius and Saba", Numeric: "535", Alpha2: "BQ", Alpha3: "BES", Calling: "+599", Currency: "USD", Continent: "NA"},
	{Name: "Bosnia and Herzegovina", Numeric: "070", Alpha2: "BA", Alpha3: "BIH", Calling: "+387", Currency: "BAM", Continent: "EU"},
	{Name: "Botswana", Numeric: "072", Alpha2: "BW", Alpha3: "BWA", Calling: "+267", Currency: "BWP", Continent: "AF"},
	{Name: "Bouvet Island", Numeric: "074", Alpha2: "BV", Alpha3: "BVT", Calling: "+47", Currency: "NOK", Continent: "AN"},
	{Name: "Brazil", Numeric: "076", Alpha2: "BR", Alpha3: "BRA", Calling: "+55", Currency: "BRL", Continent: "SA"},
	{Name: "British Indian Ocean Territory", Numeric: "086", Alpha2: "IO", Alpha3: "IOT", Calling: "+246", Currency: "USD", Continent: "AS"},
	{Name: "Brunei Darussalam", Numeric: "096", Alpha2: "BN", Alpha3: "BRN", Calling: "+673", Currency: "BND", Continent: "AS"},
	{Name: "Bulgaria", Numeric: "100", Alpha2: "BG", Alpha3: "BGR", Calling: "+359", Currency: "BGN", Continent: "EU"},
	{Name: "Burkina Faso", Numeric: "854", Alpha2: "BF", Alpha3: "BFA", Calling: "+226", Currency: "XOF", Continent: "AF"},
	{Name: "Burundi", Numeric: "108", Alpha2: "BI", Alpha3: "BDI", Calling: "+257", Currency: "BIF", Continent: "AF"},
	{Name: "Cambodia", Numeric: "116", Alpha2: "KH", Alpha3: "KHM", Calling: "+855", Currency: "KHR", Continent: "AS"},
	{Name: "Cameroon", Numeric: "120", Alpha2: "CM", Alpha3: "CMR", Calling: "+237", Currency: "XAF", Continent: "AF"},
	{Name: "Canada", Numeric: "124", Alpha2: "CA", Alpha3: "CAN", Calling: "+1", Currency: "CAD", Continent: "NA"},
	{Name: "Cabo Verde", Numeric: "132", Alpha2: "CV", Alpha3: "CPV", Calling: "+238", Currency: "CVE", Continent: "AF"},
	{Name: "Cayman Islands", Numeric: "136", Alpha2: "KY", Alpha3: "CYM", Calling: "+345", Currency: "KYD", Continent: "NA"},
	{Name: "Central African Republic", Numeric: "140", Alpha2: "CF", Alpha3: "CAF", Calling: "+236", Currency: "XAF", Continent: "AF"},
	{Name: "Chad", Numeric: "148", Alpha2: "TD", Alpha3: "TCD", Calling: "+235", Currency: "XAF", Continent: "AF"},
	{Name: "Chile", Numeric: "152", Alpha2: "CL", Alpha3: "CHL", Calling: "+56", Currency: "CLP", Continent: "SA"},
	{Name: "China", Numeric: "156", Alpha2: "CN", Alpha3: "CHN", Calling: "+86", Currency: "CNY", Continent: "AS"},
	{Name: "Christmas Island", Numeric: "162", Alpha2: "CX", Alpha3: "CXR", Calling: "+61", Currency: "AUD", Continent: "AS"},
	{Name: "Cocos (Keeling) Islands", Numeric: "166", Alpha2: "CC", Alpha3: "CCK", Calling: "+891", Currency: "AUD", Continent: "AS"},
	{Name: "Colombia", Numeric: "170", Alpha2: "CO", Alpha3: "COL", Calling: "+57", Currency: "COP", Continent: "SA"},
	{Name: "Comoros", Numeric: "174", Alpha2: "KM", Alpha3: "COM", Calling: "+269", Currency: "KMF", Continent: "AF"},
	{Name: "Congo", Numeric: "178", Alpha2: "CG", Alpha3: "COG", Calling: "+242", Currency: "XAF", Continent: "AF"},
	{Name: "Congo, the Democratic Republic of the", Numeric: "180", Alpha2: "CD", Alpha3: "COD", Calling: "+243", Currency: "CDF", Continent: "AF"},
	{Name: "Cook Islands", Numeric: "184", Alpha2: "CK", Alpha3: "COK", Calling: "+682", Currency: "NZD", Continent: "OC"},
	{Name: "Costa Rica", Numeric: "188", Alpha2: "CR", Alpha3: "CRI", Calling: "+506", Currency: "CRC", Continent: "NA"},
	{Name: "Côte d'Ivoire", Numeric: "384", Alpha2: "CI", Alpha3: "CIV", Calling: "+225", Currency: "XOF", Continent: "AF"},
	{Name: "Croatia", Numeric: "191", Alpha2: "HR", Alpha3: "HRV", Calling: "+385", Currency: "EUR", Continent: "EU"},
	{Name: "Cuba", Numeric: "192", Alpha2: "CU", Alpha3: "CUB", Calling: "+53", Currency: "CUP", Continent: "NA"},
	{Name: "Curaçao", Numeric: "531", Alpha2: "CW", Alpha3: "CUW", Calling: "+599", Currency: "ANG", Continent: "NA"},
	{Name: "Cyprus", Numeric: "196", Alpha2: "CY", Alpha3: "CYP", Calling: "+357", Currency: "EUR", Continent: "AS"},
	{Name: "Czech Republic", Numeric: "203", Alpha2: "CZ", Alpha3: "CZE", Calling: "+420", Currency: "CZK", Continent: "EU"},
	{Name: "Denmark", Numeric: "208", Alpha2: "DK", Alpha3: "DNK", Calling: "+45", Currency: "DKK", Continent: "EU"},
	{Name: "Djibouti", Numeric: "262", Alpha2: "DJ", Alpha3: "DJI", Calling: "+253", Currency: "DJF", Continent: "AF"},
	{Name: "Dominica", Numeric: "212", Alpha2: "DM", Alpha3: "DMA", Calling: "+767", Currency: "XCD", Continent: "NA"},
	{Name: "Dominican Republic", Numeric: "214", Alpha2: "DO", Alpha3: "DOM", Calling: "+809", Currency: "DOP", Continent: "NA"},
	{Name: "Ecuador", Numeric: "218", Alpha2: "EC", Alpha3: "ECU", Calling: "+593", Currency: "USD", Continent: "SA"},
	{Name: "Egypt", Numeric: "818", Alpha2: "EG", Alpha3: "EGY", Calling: "+20", Currency: "EGP", Continent: "AF"},
	{Name: "El Salvador", Numeric: "222", Alpha2: "SV", Alpha3: "SLV", Calling: "+503", Currency: "SVC", Continent: "NA"},
	{Name: "Equatorial Guinea", Numeric: "226", Alpha2: "GQ", Alpha3: "GNQ", Calling: "+240", Currency: "XAF", Continent: "AF"},
	{Name: "Eritrea", Numeric: "232", Alpha2: "ER", Alpha3: "ERI", Calling: "+291", Currency: "ETB", Continent: "AF"},
	{Name: "Estonia", Numeric: "233", Alpha2: "EE", Alpha3: "EST", Calling: "+372", Currency: "EUR", Continent: "EU"},
	{Name: "Ethiopia", Numeric: "231", Alpha2: "ET", Alpha3: "ETH", Calling: "+251", Currency: "ETB", Continent: "AF"},
	{Name: "Falkland Islands (Malvinas)", Numeric: "238", Alpha2: "FK", Alpha3: "FLK", Calling: "+500", Currency: "FKP", Continent: "SA"},
	{Name: "Faroe Islands", Numeric: "234", Alpha2: "FO", Alpha3: "FRO", Calling: "+298", Currency: "DKK", Continent: "EU"},
	{Name: "Fiji", Numeric: "242", Alpha2: "FJ", Alpha3: "FJI", Calling: "+679", Currency: "FJD", Continent: "OC"},
	{Name: "Finland", Numeric: "246", Alpha2: "FI", Alpha3: "FIN", Calling: "+358", Currency: "EUR", Continent: "EU"},
	{Name: "France", Numeric: "250", Alpha2: "FR", Alpha3: "FRA", Calling: "+33", Currency: "EUR", Continent: "EU"},
	{Name: "French Guiana", Numeric: "254", Alpha2: "GF", Alpha3: "GUF", Calling: "+594", Currency: "EUR", Continent: "SA"},
	{Name: "French Polynesia", Numeric: "258", Alpha2: "PF", Alpha3: "PYF", Calling: "+689", Currency: "XPF", Continent: "OC"},
	{Name: "French Southern Territories", Numeric: "260", Alpha2: "TF", Alpha3: "ATF", Calling: "+689", Currency: "EUR", Continent: "AN"},
	{Name: "Gabon", Numeric: "266", Alpha2: "GA", Alpha3: "GAB", Calling: "+241", Currency: "XAF", Continent: "AF"},
	{Name: "Gambia", Numeric: "270", Alpha2: "GM", Alpha3: "GMB", Calling: "+220", Currency: "GMD", Continent: "AF"},
	{Name: "Georgia", Numeric: "268", Alpha2: "GE", Alpha3: "GEO", Calling: "+995", Currency: "GEL", Continent: "AS"},
	{Name: "Germany", Numeric: "276", Alpha2: "DE", Alpha3: "DEU", Calling: "+49", Currency: "EUR", Continent: "EU"},
	{Name: "Ghana", Numeric: "288", Alpha2: "GH", Alpha3: "GHA", Calling: "+233", Currency: "GHS", Continent: "AF"},
	{Name: "Gibraltar", Numeric: "292", Alpha2: "GI", Alpha3: "GIB", Calling: "+350", Currency: "GIP", Continent: "EU"},
	{Name: "Greece", Numeric: "300", Alpha2: "GR", Alpha3: "GRC", Calling: "+30", Currency: "EUR", Continent: "EU"},
	{Name: "Greenland", Numeric: "304", Alpha2: "GL", Alpha3: "GRL", Calling: "+299", Currency: "DKK", Continent: "NA"},
	{Name: "Grenada", Numeric: "308", Alpha2: "GD", Alpha3: "GRD", Calling: "+473", Currency: "XCD", Continent: "NA"},
	{Name: "Guadeloupe", Numeric: "312", Alpha2: "GP", Alpha3: "GLP", Calling: "+590", Currency: "EUR", Continent: "NA"},
	{Name: "Guam", Numeric: "316", Alpha2: "GU", Alpha3: "GUM", Calling: "+671", Currency: "USD", Continent: "OC"},
	{Name: "Guatemala", Numeric: "320", Alpha2: "GT", Alpha3: "GTM", Calling: "+502", Currency: "GTQ", Continent: "NA"},
	{Name: "Guernsey", Numeric: "831", Alpha2: "GG", Alpha3: "GGY", Calling: "+1481", Currency: "GBP", Continent: "EU"},
	{Name: "Guinea", Numeric: "324", Alpha2: "GN", Alpha3: "GIN", Calling: "+225", Currency: "GNF", Continent: "AF"},
	{Name: "Guinea-Bissau", Numeric: "624", Alpha2: "GW", Alpha3: "GNB", Calling: "+245", Currency: "XOF", Continent: "AF"},
	{Name: "Guyana", Numeric: "328", Alpha2: "GY", Alpha3: "GUY", Calling: "+592", Currency: "GYD", Continent: "SA"},
	{Name: "Haiti", Numeric: "332", Alpha2: "HT", Alpha3: "HTI", Calling: "+509", Currency: "HTG", Continent: "NA"},
	{Name: "Heard Island and McDonald Islands", Numeric: "334", Alpha2: "HM", Alpha3: "HMD", Calling: "+61", Currency: "AUD", Continent: "AN"},
	{Name: "Holy See (Vatican City State)", Numeric: "336", Alpha2: "VA", Alpha3: "VAT", Calling: "+379", Currency: "EUR", Continent: "EU"},
	{Name: "Honduras", Numeric: "340", Alpha2: "HN", Alpha3: "HND", Calling: "+504", Currency: "HNL", Continent: "NA"},
	{Name: "Hong Kong", Numeric: "344", Alpha2: "HK", Alpha3: "HKG", Calling: "+852", Currency: "HKD", Continent: "AS"},
	{Name: "Hungary", Numeric: "348", Alpha2: "HU", Alpha3: "HUN", Calling: "+36", Currency: "HUF", Continent: "EU"},
	{Name: "Iceland", Numeric: "352", Alpha2: "IS", Alpha3: "ISL", Calling: "+354", Currency: "ISK", Continent: "EU"},
	{Name: "India", Numeric: "356", Alpha2: "IN", Alpha3: "IND", Calling: "+91", Currency: "INR", Continent: "AS"},
	{Name: "Indonesia", Numeric: "360", Alpha2: "ID", Alpha3: "IDN", Calling: "+62", Currency: "IDR", Continent: "AS"},
	{Name: "Iran, Islamic Republic of", Numeric: "364", Alpha2: "IR", Alpha3: "IRN", Calling: "+98", Currency: "IRR", Continent: "AS"},
	{Name: "Iraq", Numeric: "368", Alpha2: "IQ", Alpha3: "IRQ", Calling: "+964", Currency: "IQD", Continent: "AS"},
	{Name: "Ireland", Numeric: "372", Alpha2: "IE", Alpha3: "IRL", Calling: "+353", Currency: "EUR", Continent: "EU"},
	{Name: "Isle of Man", Numeric: "833", Alpha2: "IM", Alpha3: "IMN", Calling: "+44", Currency: "GBP", Continent: "EU"},
	{Name: "Israel", Numeric: "376", Alpha2: "IL", Alpha3: "ISR", Calling: "+972", Currency: "ILS", Continent: "AS"},
	{Name: "Italy", Numeric: "380", Alpha2: "IT", Alpha3: "ITA", Calling: "+39", Currency: "EUR", Continent: "EU"},
	{Name: "Jamaica", Numeric: "388", Alpha2: "JM", Alpha3: "JAM", Calling: "+876", Currency: "JMD", Continent: "NA"},
	{Name: "Japan", Numeric: "392", Alpha2: "JP", Alpha3: "JPN", Calling: "+81", Currency: "JPY", Continent: "AS"},
	{Name: "Jersey", Numeric: "832", Alpha2: "JE", Alpha3: "JEY", Calling: "+44", Currency: "GBP", Continent: "EU"},
	{Name: "Jordan", Numeric: "400", Alpha2: "JO", Alpha3: "JOR", Calling: "+962", Currency: "JOD", Continent: "AS"},
	{Name: "Kazakhstan", Numeric: "398", Alpha2: "KZ", Alpha3: "KAZ", Calling: "+7", Currency: "KZT", Continent: "AS"},
	{Name: "Kenya", Numeric: "404", Alpha2: "KE", Alpha3: "KEN", Calling: "+254", Currency: "KES", Continent: "AF"},
	{Name: "Kiribati", Numeric: "296", Alpha2: "KI", Alpha3: "KIR", Calling: "+686", Currency: "AUD", Continent: "OC"},
	{Name: "Korea, Democratic People's Republic of", Numeric: "408", Alpha2: "KP", Alpha3: "PRK", Calling: "+850", Currency: "KPW", Continent: "AS"},
	{Name: "Korea, Republic of", Numeric: "410", Alpha2: "KR", Alpha3: "KOR", Calling: "+82", Currency: "KRW", Continent: "AS"},
	{Name: "Kuwait", Numeric: "414", Alpha2: "KW", Alpha3: "KWT", Calling: "+965", Currency: "KWD", Continent: "AS"},
	{Name: "Kyrgyzstan", Numeric: "417", Alpha2: "KG", Alpha3: "KGZ", Calling: "+996", Currency: "KGS", Continent: "AS"},
	{Name: "Lao People's Democratic Republic", Numeric: "418", Alpha2: "LA", Alpha3: "LAO", Calling: "+856", Currency: "LAK", Continent: "AS"},
	{Name: "Latvia", Numeric: "428", Alpha2: "LV", Alpha3: "LVA", Calling: "+371", Currency: "EUR", Continent: "EU"},
	{Name: "Lebanon", Numeric: "422", Alpha2: "LB", Alpha3: "LBN", Calling: "+961", Currency: "LBP", Continent: "AS"},
	{Name: "Lesotho", Numeric: "426", Alpha2: "LS", Alpha3: "LSO", Calling: "+266", Currency: "LSL", Continent: "AF"},
	{Name: "Liberia", Numeric: "430", Alpha2: "LR", Alpha3: "LBR", Calling: "+231", Currency: "LRD", Continent: "AF"},
	{Name: "Libya", Numeric: "434", Alpha2: "LY", Alpha3: "LBY", Calling: "+218", Currency: "LYD", Continent: "AF"},
	{Name: "Liechtenstein", Numeric: "438", Alpha2: "LI", Alpha3: "LIE", Calling: "+423", Currency: "CHF", Continent: "EU"},
	{Name: "Lithuania", Numeric: "440", Alpha2: "LT", Alpha3: "LTU", Calling: "+370", Currency: "EUR", Continent: "EU"},
	{Name: "Luxembourg", Numeric: "442", Alpha2: "LU", Alpha3: "LUX", Calling: "+352", Currency: "EUR", Continent: "EU"},
	{Name: "Macao", Numeric: "446", Alpha2: "MO", Alpha3: "MAC", Calling: "+853", Currency: "MOP", Continent: "AS"},
	{Name: "Macedonia, the former Yugoslav Republic of", Numeric: "807", Alpha2: "MK", Alpha3: "MKD", Calling: "+389", Currency: "MKD", Continent: "EU"},
	{Name: "Madagascar", Numeric: "450", Alpha2: "MG", Alpha3: "MDG", Calling: "+261", Currency: "MGA", Continent: "AF"},
	{Name: "Malawi", Numeric: "454", Alpha2: "MW", Alpha3: "MWI", Calling: "+265", Currency: "MWK", Continent: "AF"},
	{Name: "Malaysia", Numeric: "458", Alpha2: "MY", Alpha3: "MYS", Calling: "+60", Currency: "MYR", Continent: "AS"},
	{Name: "Maldives", Numeric: "462", Alpha2: "MV", Alpha3: "MDV", Calling: "+960", Currency: "MVR", Continent: "AS"},
	{Name: "Mali", Numeric: "466", Alpha2: "ML", Alpha3: "MLI", Calling: "+223", Currency: "XOF", Continent: "AF"},
	{Name: "Malta", Numeric: "470", Alpha2: "MT", Alpha3: "MLT", Calling: "+356", Currency: "EUR", Continent: "EU"},
	{Name: "Marshall Islands", Numeric: "584", Alpha2: "MH", Alpha3: "MHL", Calling: "+692", Currency: "USD", Continent: "OC"},
	{Name: "Martinique", Numeric: "474", Alpha2: "MQ", Alpha3: "MTQ", Calling: "+596", Currency: "EUR", Continent: "NA"},
	{Name: "Mauritania", Numeric: "478", Alpha2: "MR", Alpha3: "MRT", Calling: "+222", Currency: "MRO", Continent: "AF"},
	{Name: "Mauritius", Numeric: "480", Alpha2: "MU", Alpha3: "MUS", Calling: "+230", Currency: "MUR", Continent: "AF"},
	{Name: "Mayotte", Numeric: "175", Alpha2: "YT", Alpha3: "MYT", Calling: "+262", Currency: "EUR", Continent: "AF"},
	{Name: "Mexico", Numeric: "484", Alpha2: "MX", Alpha3: "MEX", Calling: "+52", Currency: "MXN", Continent: "NA"},
	{Name: "Micronesia, Federated States of", Numeric: "583", Alpha2: "FM", Alpha3: "FSM", Calling: "+691", Currency: "USD", Continent: "OC"},
	{Name: "Moldova, Republic of", Numeric: "498", Alpha2: "MD", Alpha3: "MDA", Calling: "+373", Currency: "MDL", Continent: "EU"},
	{Name: "Monaco", Numeric: "492", Alpha2: "MC", Alpha3: "MCO", Calling: "+355", Currency: "EUR", Continent: "EU"},
	{Name: "Mongolia", Numeric: "496", Alpha2: "MN", Alpha3: "MNG", Calling: "+976", Currency: "MNT", Continent: "AS"},
	{Name: "Montenegro", Numeric: "499", Alpha2: "ME", Alpha3: "MNE", Calling: "+382", Currency: "EUR", Continent: "EU"},
	{Name: "Montserrat", Numeric: "500", Alpha2: "MS", Alpha3: "MSR", Calling: "+664", Currency: "XCD", Continent: "NA"},
	{Name: "Morocco", Numeric: "504", Alpha2: "MA", Alpha3: "MAR", Calling: "+212", Currency: "MAD", Continent: "AF"},
	{Name: "Mozambique", Numeric: "508", Alpha2: "MZ", Alpha3: "MOZ", Calling: "+258", Currency: "MZN", Continent: "AF"},
	{Name: "Myanmar", Numeric: "104", Alpha2: "MM", Alpha3: "MMR", Calling: "+95", Currency: "MMK", Continent: "AS"},
	{Name: "Namibia", Numeric: "516", Alpha2: "NA", Alpha3: "NAM", Calling: "+264", Currency: "NAD", Continent: "AF"},
	{Name: "Nauru", Numeric: "520", Alpha2: "NR", Alpha3: "NRU", Calling: "+674", Currency: "AUD", Continent: "OC"},
	{Name: "Nepal", Numeric: "524", Alpha2: "NP", Alpha3: "NPL", Calling: "+977", Currency: "NPR", Continent: "AS"},
	{Name: "Netherlands", Numeric: "528", Alpha2: "NL", Alpha3: "NLD", Calling: "+31", Currency: "EUR", Continent: "EU"},
	{Name: "New Caledonia", Numeric: "540", Alpha2: "NC", Alpha3: "NCL", Calling: "+687", Currency: "XPF", Continent: "OC"},
	{Name: "New Zealand", Numeric: "554", Alpha2: "NZ", Alpha3: "NZL", Calling: "+64", Currency: "NZD", Continent: "OC"},
	{Name: "Nicaragua", Numeric: "558", Alpha2: "NI", Alpha3: "NIC", Calling: "+505", Currency: "NIO", Continent: "NA"},
	{Name: "Niger", Numeric: "562", Alpha2: "NE", Alpha3: "NER", Calling: "+277", Currency: "XOF", Continent: "AF"},
	{Name: "Nigeria", Numeric: "566", Alpha2: "NG", Alpha3: "NGA", Calling: "+234", Currency: "NGN", Continent: "AF"},
	{Name: "Niue", Numeric: "570", Alpha2: "NU", Alpha3: "NIU", Calling: "+683", Currency: "NZD", Continent: "OC"},
	{Name: "Norfolk Island", Numeric: "574", Alpha2: "NF", Alpha3: "NFK", Calling: "+672", Currency: "AUD", Continent: "OC"},
	{Name: "Northern Mariana Islands", Numeric: "580", Alpha2: "MP", Alpha3: "MNP", Calling: "+670", Currency: "USD", Continent: "OC"},
	{Name: "Norway", Numeric: "578", Alpha2: "NO", Alpha3: "NOR", Calling: "+47", Currency: "NOK", Continent: "EU"},
	{Name: "Oman", Numeric: "512", Alpha2: "OM", Alpha3: "OMN", Calling: "+968", Currency: "OMR", Continent: "AS"},
	{Name: "Pakistan", Numeric: "586", Alpha2: "PK", Alpha3: "PAK", Calling: "+92", Currency: "PKR", Continent: "AS"},
	{Name: "Palau", Numeric: "585", Alpha2: "PW", Alpha3: "PLW", Calling: "+680", Currency: "USD", Continent: "OC"},
	{Name: "Palestine, State of", Numeric: "275", Alpha2: "PS", Alpha3: "PSE", Calling: "+970", Currency: "JOD", Continent: "AS"},
	{Name: "Panama", Numeric: "591", Alpha2: "PA", Alpha3: "PAN", Calling: "+507", Currency: "PAB", Continent: "NA"},
	{Name: "Papua New Guinea", Numeric: "598", Alpha2: "PG", Alpha3: "PNG", Calling: "+675", Currency: "PGK", Continent: "OC"},
	{Name: "Paraguay", Numeric: "600", Alpha2: "PY", Alpha3: "PRY", Calling: "+595", Currency: "PYG", Continent: "SA"},
	{Name: "Peru", Numeric: "604", Alpha2: "PE", Alpha3: "PER", Calling: "+51", Currency: "PEN", Continent: "SA"},
	{Name: "Philippines", Numeric: "608", Alpha2: "PH", Alpha3: "PHL", Calling: "+63", Currency: "PHP", Continent: "AS"},
	{Name: "Pitcairn", Numeric: "612", Alpha2: "PN", Alpha3: "PCN", Calling: "+872", Currency: "NZD", Continent: "OC"},
	{Name: "Poland", Numeric: "616", Alpha2: "PL", Alpha3: "POL", Calling: "+48", Currency: "PLN", Continent: "EU"},
	{Name: "Portugal", Numeric: "620", Alpha2: "PT", Alpha3: "PRT", Calling: "+351", Currency: "EUR", Continent: "EU"},
	{Name: "Puerto Rico", Numeric: "630", Alpha2: "PR", Alpha3: "PRI", Calling: "+787", Currency: "USD", Continent: "NA"},
	{Name: "Qatar", Numeric: "634", Alpha2: "QA", Alpha3: "QAT", Calling: "+974", Currency: "QAR", Continent: "AS"},
	{Name: "Réunion", Numeric: "638", Alpha2: "RE", Alpha3: "REU", Calling: "+262", Currency: "EUR", Continent: "AF"},
	{Name: "Romania", Numeric: "642", Alpha2: "RO", Alpha3: "ROU", Calling: "+40", Currency: "RON", Continent: "EU"},
	{Name: "Russian Federation", Numeric: "643", Alpha2: "RU", Alpha3: "RUS", Calling: "+7", Currency: "RUB", Continent: "EU"},
	{Name: "Rwanda", Numeric: "646", Alpha2: "RW", Alpha3: "RWA", Calling: "+250", Currency: "RWF", Continent: "AF"},
	{Name: "Saint Barthélemy", Numeric: "652", Alpha2: "BL", Alpha3: "BLM", Calling: "+590", Currency: "EUR", Continent: "NA"},
	{Name: "Saint Helena, Ascension and Tristan da Cunha", Numeric: "654", Alpha2: "SH", Alpha3: "SHN", Calling: "+290", Currency: "SHP", Continent: "AF"},
	{Name: "Saint Kitts and Nevis", Numeric: "659", Alpha2: "KN", Alpha3: "KNA", Calling: "+869", Currency: "XCD", Continent: "NA"},
	{Name: "Saint Lucia", Numeric: "662", Alpha2: "LC", Alpha3: "LCA", Calling: "+758", Currency: "XCD", Continent: "NA"},
	{Name: "Saint Martin (French part)", Numeric: "663", Alpha2: "MF", Alpha3: "MAF", Calling: "+590", Currency: "EUR", Continent: "NA"},
	{Name: "Saint Pierre and Miquelon", Numeric: "666", Alpha2: "PM", Alpha3: "SPM", Calling: "+508", Currency: "EUR", Continent: "NA"},
	{Name: "Saint Vincent and the Grenadines", Numeric: "670", Alpha2: "VC", Alpha3: "VCT", Calling: "+784", Currency: "XCD", Continent: "NA"},
	{Name: "Samoa", Numeric: "882", Alpha2: "WS", Alpha3: "WSM", Calling: "+685", Currency: "WST", Continent: "OC"},
	{Name: "San Marino", Numeric: "674", Alpha2: "SM", Alpha3: "SMR", Calling: "+378", Currency: "EUR", Continent: "EU"},
	{Name: "Sao Tome and Principe", Numeric: "678", Alpha2: "ST", Alpha3: "STP", Calling: "+239", Currency: "STN", Continent: "AF"},
	{Name: "Saudi Arabia", Numeric: "682", Alpha2: "SA", Alpha3: "SAU", Calling: "+966", Currency: "SAR", Continent: "AS"},
	{Name: "Senegal", Numeric: "686", Alpha2: "SN", Alpha3: "SEN", Calling: "+221", Currency: "XOF", Continent: "AF"},
	{Name: "Serbia", Numeric: "688", Alpha2: "RS", Alpha3: "SRB", Calling: "+381", Currency: "RSD", Continent: "EU"},
	{Name: "Seychelles", Numeric: "690", Alpha2: "SC", Alpha3: "SYC", Calling: "+248", Currency: "SCR", Continent: "AF"},
	{Name: "Sierra Leone", Numeric: "694", Alpha2: "SL", Alpha3: "SLE", Calling: "+232", Currency: "SLL", Continent: "AF"},
	{Name: "Singapore", Numeric: "702", Alpha2: "SG", Alpha3: "SGP", Calling: "+65", Currency: "SGD", Continent: "AS"},
	{Name: "Sint Maarten (Dutch part)", Numeric: "534", Alpha2: "SX", Alpha3: "SXM", Calling: "+599", Currency: "ANG", Continent: "NA"},
	{Name: "Slovakia", Numeric: "703", Alpha2: "SK", Alpha3: "SVK", Calling: "+421", Currency: "EUR", Continent: "EU"},
	{Name: "Slovenia", Numeric: "705", Alpha2: "SI", Alpha3: "SVN", Calling: "+386", Currency: "EUR", Continent: "EU"},
	{Name: "Solomon Islands", Numeric: "090", Alpha2: "SB", Alpha3: "SLB", Calling: "+677", Currency: "SBD", Continent: "OC"},
	{Name: "Somalia", Numeric: "706", Alpha2: "SO", Alpha3: "SOM", Calling: "+252", Currency: "SOS", Continent: "AF"},
	{Name: "South Africa", Numeric: "710", Alpha2: "ZA", Alpha3: "ZAF", Calling: "+27", Currency: "ZAR", Continent: "AF"},
	{Name: "South Georgia and the South Sandwich Islands", Numeric: "239", Alpha2: "GS", Alpha3: "SGS", Calling: "+500", Currency: "GBP", Continent: "AN"},
	{Name: "South Sudan", Numeric: "728", Alpha2: "SS", Alpha3: "SSD", Calling: "+211", Currency: "SSP", Continent: "AF"},
	{Name: "Spain", Numeric: "724", Alpha2: "ES", Alpha3: "ESP", Calling: "+34", Currency: "EUR", Continent: "EU"},
	{Name: "Sri Lanka", Numeric: "144", Alpha2: "LK", Alpha3: "LKA", Calling: "+94", Currency: "LKR", Continent: "AS"},
	{Name: "Sudan", Numeric: "729", Alpha2: "SD", Alpha3: "SDN", Calling: "+249", Currency: "SDG", Continent: "AF"},
	{Name: "Suriname", Numeric: "740", Alpha2: "SR", Alpha3: "SUR", Calling: "+597", Currency: "SRD", Continent: "SA"},
	{Name: "Svalbard and Jan Mayen", Numeric: "744", Alpha2: "SJ", Alpha3: "SJM", Calling: "+47", Currency: "NOK", Continent: "EU"},
	{Name: "Swaziland", Numeric: "748", Alpha2: "SZ", Alpha3: "SWZ", Calling: "+268", Currency: "CHF", Continent: "AF"},
	{Name: "Sweden", Numeric: "752", Alpha2: "SE", Alpha3: "SWE", Calling: "+46", Currency: "SEK", Continent: "EU"},
	{Name: "Switzerland", Numeric: "756", Alpha2: "CH", Alpha3: "CHE", Calling: "+41", Currency: "CHF", Continent: "EU"},
	{Name: "Syrian Arab Republic", Numeric: "760", Alpha2: "SY", Alpha3: "SYR", Calling: "+963", Currency: "SYP", Continent: "AS"},
	{Name: "Taiwan, Province of China", Numeric: "158", Alpha2: "TW", Alpha3: "TWN", Calling: "+886", Currency: "TWD", Continent: "AS"},
	{Name: "Tajikistan", Numeric: "762", Alpha2: "TJ", Alpha3: "TJK", Calling: "+992", Currency: "TJS", Continent: "AS"},
	{Name: "Tanzania, United Republic of", Numeric: "834", Alpha2: "TZ", Alpha3: "TZA", Calling: "+255", Currency: "TZS", Continent: "AF"},
	{Name: "Thailand", Numeric: "764", Alpha2: "TH", Alpha3: "THA", Calling: "+66", Currency: "THB", Continent: "AS"},
	{Name: "Timor-Leste", Numeric: "626", Alpha2: "TL", Alpha3: "TLS", Calling: "+670", Currency: "IDR", Continent: "AS"},
	{Name: "Togo", Numeric: "768", Alpha2: "TG", Alpha3: "TGO", Calling: "+228", Currency: "XOF", Continent: "AF"},
	{Name: "Tokelau", Numeric: "772", Alpha2: "TK", Alpha3: "TKL", Calling: "+690", Currency: "NZD", Continent: "OC"},
	{Name: "Tonga", Numeric: "776", Alpha2: "TO", Alpha3: "TON", Calling: "+676", Currency: "TOP", Continent: "OC"},
	{Name: "Trinidad and Tobago", Numeric: "780", Alpha2: "TT", Alpha3: "TTO", Calling: "+868", Currency: "TTD", Continent: "NA"},
	{Name: "Tunisia", Numeric: "788", Alpha2: "TN", Alpha3: "TUN", Calling: "+216", Currency: "TND", Continent: "AF"},
	{Name: "Turkey", Numeric: "792", Alpha2: "TR", Alpha3: "TUR", Calling: "+90", Currency: "TRY", Continent: "EU"},
	{Name: "Turkmenistan", Numeric: "795", Alpha2: "TM", Alpha3: "TKM", Calling: "+993", Currency: "TMT", Continent: "AS"},
	{Name: "Turks and Caicos Islands", Numeric: "796", Alpha2: "TC", Alpha3: "TCA", Calling: "+649", Currency: "USD", Continent: "NA"},
	{Name: "Tuvalu", Numeric: "798", Alpha2: "TV", Alpha3: "TUV", Calling: "+688", Currency: "AUD", Continent: "OC"},
	{Name: "Uganda", Numeric: "800", Alpha2: "UG", Alpha3: "UGA", Calling: "+256", Currency: "UGX", Continent: "AF"},
	{Name: "Ukraine", Numeric: "804", Alpha2: "UA", Alpha3: "UKR", Calling: "+380", Currency: "UAH", Continent: "EU"},
	{Name: "United Arab Emirates", Numeric: "784", Alpha2: "AE", Alpha3: "ARE", Calling: "+971", Currency: "AED", Continent: "AS"},
	{Name: "United Kingdom", Numeric: "826", Alpha2: "GB", Alpha3: "GBR", Calling: "+44", Currency: "GBP", Continent: "EU"},
	{Name: "United States", Numeric: "840", Alpha2: "US", Alpha3: "USA", Calling: "+1", Currency: "USD", Continent: "NA"},
	{Name: "United States Minor Outlying Islands", Numeric: "581", Alpha2: "UM", Alpha3: "UMI", Calling: "+1", Currency: "USD", Continent: "OC"},
	{Name: "Uruguay", Numeric: "858", Alpha2: "UY", Alpha3: "URY", Calling: "+598", Currency: "UYU", Continent: "SA"},
	{Name: "Uzbekistan", Numeric: "860", Alpha2: "UZ", Alpha3: "UZB", Calling: "+998", Currency: "UZS", Continent: "AS"},
	{Name: "Vanuatu", Numeric: "548", Alpha2: "VU", Alpha3: "VUT", Calling: "+678", Currency: "VUV", Continent: "OC"},
	{Name: "Venezuela, Bolivarian Republic of", Numeric: "862", Alpha2: "VE", Alpha3: "VEN", Calling: "+58", Currency: "VEF", Continent: "SA"},
	{Name: "Vietnam", Numeric: "704", Alpha2: "VN", Alpha3: "VNM", Calling: "+84", Currency: "VND", Continent: "AS"},
	{Name: "Virgin Islands, British", Numeric: "092", Alpha2: "VG", Alpha3: "VGB", Calling: "+284", Currency: "USD", Continent: "NA"},
	{Name: "Virgin Islands, U.S.", Numeric: "850", Alpha2: "VI", Alpha3: "VIR", Calling: "+340", Currency: "USD", Continent: "NA"},
	{Name: "Wallis and Futuna", Numeric: "876", Alpha2: "WF", Alpha3: "WLF", Calling: "+681", Currency: "XPF", Continent: "OC"},
	{Name: "Western Sahara", Numeric: "732", Alpha2: "EH", Alpha3: "ESH", Calling: "+212", Currency: "MAD", Continent: "AF"},
	{Name: "Yemen", Numeric: "887", Alpha2: "YE", Alpha3: "YEM", Calling: "+967", Currency: "YER", Continent: "AS"},
	{Name: "Zambia", Numeric: "894", Alpha2: "ZM", Alpha3: "ZMB", Calling: "+260", Currency: "ZMW", Continent: "AF"},
	{Name: "Zimbabwe", Numeric: "716", Alpha2: "ZW", Alpha3: "ZWE", Calling: "+263", Currency: "ZWL", Continent: "AF"},
}

// Countries returns a copy of the reference table.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// FindCountry looks a country up by alpha-2, alpha-3 (case-insensitive) or numeric code.
func FindCountry(key string) (Country, bool) {
	key = strings.TrimSpace(key)
	upper := strings.ToUpper(key)
	for _, c := range countries {
		if c.Alpha2 == upper || c.Alpha3 == upper || c.Numeric == key {
			return c, true
		}
	}
	return Country{}, false
}

// SearchCountryByName matches names ignoring case and diacritics.
// A unique exact match wins; otherwise queries longer than three characters fall back
// to a substring match, which must also be unique.
func SearchCountryByName(name string) (Country, bool) {
	q := foldName(name)
	if q == "" {
		return Country{}, false
	}
	var exact []Country
	for _, c := range countries {
		if foldName(c.Name) == q {
			exact = append(exact, c)
		}
	}
	if len(exact) == 1 {
		return exact[0], true
	}

	if len([]rune(q)) < minPartialNameLength {
		return Country{}, false
	}
	var partial []Country
	for _, c := range countries {
		if strings.Contains(foldName(c.Name), q) {
			partial = append(partial, c)
		}
	}
	// ambiguous results (two Koreas, two Congos) resolve to nothing
	if len(partial) != 1 {
		return Country{}, false
	}
	return partial[0], true
}

// CountriesByCurrency returns every country using the given currency code.
func CountriesByCurrency(code string) []Country {
	code = strings.ToUpper(strings.TrimSpace(code))
	var out []Country
	for _, c := range countries {
		if c.Currency == code {
			out = append(out, c)
		}
	}
	return out
}

// SearchCountryByCallingCode returns every country sharing an international dialling prefix.
// The leading plus is optional.
func SearchCountryByCallingCode(code string) []Country {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	if !strings.HasPrefix(code, "+") {
		code = "+" + code
	}
	var out []Country
	for _, c := range countries {
		if c.Calling == code {
			out = append(out, c)
		}
	}
	return out
}

// LocaleFor builds the English display locale for a region, e.g. en-GB.
func LocaleFor(alpha2 string) language.Tag {
	region, err := language.ParseRegion(alpha2)
	if err != nil {
		return language.English
	}
	tag, err := language.Compose(language.English, region)
	if err != nil {
		return language.English
	}
	return tag
}

// Locale returns the country's display locale.
func (c Country) Locale() language.Tag {
	return LocaleFor(c.Alpha2)
}

// CurrencyUnit returns the country's currency carrying the country's display locale.
func (c Country) CurrencyUnit() (Currency, error) {
	cur, err := NewCurrency(c.Currency)
	if err != nil {
		return Currency{}, err
	}
	return cur.WithLocale(c.Locale()), nil
}

// Flag returns the emoji flag built from the alpha-2 regional indicators.
func (c Country) Flag() string {
	if len(c.Alpha2) != 2 {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(c.Alpha2) {
		if r < 'A' || r > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}
