package team

// DefaultShortNames maps known team display names to curated abbreviations.
// Teams not listed get an auto-derived short name (see ShortName).
var DefaultShortNames = map[string]string{
	"Fnatic":                       "FNC",
	"G2 Esports":                   "G2",
	"GIANTX":                       "GX",
	"Karmine Corp":                 "KC",
	"Karmine Corp Blue":            "KCB",
	"Los Ratones":                  "LR",
	"Movistar KOI":                 "KOI",
	"Natus Vincere":                "NAVI",
	"Shifters":                     "SFT",
	"SK Gaming":                    "SK",
	"Team Heretics":                "TH",
	"Team Vitality":                "VIT",
	"MAD Lions":                    "MAD",
	"Rogue":                        "RGE",
	"Excel Esports":                "XL",
	"Team BDS":                     "BDS",
	"T1":                           "T1",
	"Gen.G":                        "GEN",
	"Gen.G Esports":                "GEN",
	"Hanwha Life Esports":          "HLE",
	"DRX":                          "DRX",
	"Dplus KIA":                    "DK",
	"Dplus":                        "DK",
	"KT Rolster":                   "KT",
	"Kwangdong Freecs":             "KDF",
	"Nongshim RedForce":            "NS",
	"OKSavingsBank BRION":          "BRO",
	"BRION":                        "BRO",
	"FearX":                        "FOX",
	"BNK FearX":                    "FOX",
	"FEARX":                        "FOX",
	"Bilibili Gaming":              "BLG",
	"JD Gaming":                    "JDG",
	"LNG Esports":                  "LNG",
	"Top Esports":                  "TES",
	"Weibo Gaming":                 "WBG",
	"Royal Never Give Up":          "RNG",
	"Edward Gaming":                "EDG",
	"EDward Gaming":                "EDG",
	"FunPlus Phoenix":              "FPX",
	"Team Liquid":                  "TL",
	"Cloud9":                       "C9",
	"FlyQuest":                     "FLY",
	"100 Thieves":                  "100T",
	"NRG":                          "NRG",
	"Dignitas":                     "DIG",
	"Immortals":                    "IMT",
	"Shopify Rebellion":            "SR",
	"LOUD":                         "LOUD",
	"paiN Gaming":                  "PNG",
	"PaiN Gaming":                  "PNG",
	"FURIA":                        "FUR",
	"RED Canids":                   "RED",
	"Isurus":                       "ISG",
	"Isurus Gaming":                "ISU",
	"Estral Esports":               "EST",
	"DetonatioN FocusMe":           "DFM",
	"Fukuoka SoftBank HAWKS gaming": "SHG",
	"Sengoku Gaming":               "SG",
	"Invictus Gaming":              "IG",
	"Six Karma":                    "6K",
	"Oh My God":                    "OMG",
	"LGD Gaming":                   "LGD",
	"Ultra Prime":                  "UP",
	"Team WE":                      "WE",
	"Ninjas in Pyjamas":            "NIP",
	"ThunderTalk Gaming":           "TT",
	"SOOPers":                      "SP",
	"Sentinels":                    "SEN",
	"Disguised":                    "DSG",
	"LYON":                         "LYN",
	"Infinity":                     "INF",
	"All Knights":                  "AK",
	"Leviatán":                     "LEV",
	"Keyd Stars":                   "KYS",
	"Fluxo W7M":                    "FW7",
	"LOS":                          "LOS",
	"V3 Esports":                   "V3",
	"Clocks":                       "CLK",
	"Yang Yang Gaming":             "YYG",
	"Team Flash":                   "FL",
	"Saigon Dino":                  "SGD",
	"Saigon Secret":                "SS",
	"Apex Predator":                "APX",
	"GenZ Gaming":                  "GNZ",
	"Mila Gaming":                  "MIL",
	"Never Give Up":                "NGU",
	"Vikings Esports Academy":      "VEA",
	"CyberCore Esports":            "CCE",
}

// DefaultRegionEmoji maps league regions to a display glyph.
var DefaultRegionEmoji = map[string]string{
	"Europe":        "🇪🇺",
	"Korea":         "🇰🇷",
	"China":         "🇨🇳",
	"North America": "🇺🇸",
	"Pacific":       "🌏",
	"Vietnam":       "🇻🇳",
	"Brazil":        "🇧🇷",
	"Latin America": "🌎",
	"Japan":         "🇯🇵",
}

// FallbackEmoji is used for regions without a mapping.
const FallbackEmoji = "🎮"
