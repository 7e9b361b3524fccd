package canon

// books is the canon in traditional Catholic order.
var books = []Descriptor{
	// ── Pentateuch ────────────────────────────────────────────────────────────
	{Name: "Genesis", Abbreviation: "Gn", Order: 1, Testament: TestamentOld, Group: GroupPentateuch},
	{Name: "Exodus", Abbreviation: "Ex", Order: 2, Testament: TestamentOld, Group: GroupPentateuch},
	{Name: "Leviticus", Abbreviation: "Lv", Order: 3, Testament: TestamentOld, Group: GroupPentateuch},
	{Name: "Numbers", Abbreviation: "Nm", Order: 4, Testament: TestamentOld, Group: GroupPentateuch},
	{Name: "Deuteronomy", Abbreviation: "Dt", Order: 5, Testament: TestamentOld, Group: GroupPentateuch},

	// ── Historical books ──────────────────────────────────────────────────────
	{Name: "Joshua", Abbreviation: "Jos", Order: 6, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "Judges", Abbreviation: "Jgs", Order: 7, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "Ruth", Abbreviation: "Ru", Order: 8, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "1 Samuel", Abbreviation: "1 Sm", Order: 9, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "2 Samuel", Abbreviation: "2 Sm", Order: 10, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "1 Kings", Abbreviation: "1 Kgs", Order: 11, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "2 Kings", Abbreviation: "2 Kgs", Order: 12, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "1 Chronicles", Abbreviation: "1 Chr", Order: 13, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "2 Chronicles", Abbreviation: "2 Chr", Order: 14, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "Ezra", Abbreviation: "Ezr", Order: 15, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "Nehemiah", Abbreviation: "Neh", Order: 16, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "Tobit", Abbreviation: "Tb", Order: 17, Testament: TestamentOld, Group: GroupHistorical, IsDeuterocanonical: true},
	{Name: "Judith", Abbreviation: "Jdt", Order: 18, Testament: TestamentOld, Group: GroupHistorical, IsDeuterocanonical: true},
	{Name: "Esther", Abbreviation: "Est", Order: 19, Testament: TestamentOld, Group: GroupHistorical},
	{Name: "1 Maccabees", Abbreviation: "1 Mc", Order: 20, Testament: TestamentOld, Group: GroupHistorical, IsDeuterocanonical: true},
	{Name: "2 Maccabees", Abbreviation: "2 Mc", Order: 21, Testament: TestamentOld, Group: GroupHistorical, IsDeuterocanonical: true},

	// ── Wisdom books ──────────────────────────────────────────────────────────
	{Name: "Job", Abbreviation: "Jb", Order: 22, Testament: TestamentOld, Group: GroupWisdom},
	{Name: "Psalms", Abbreviation: "Ps", Order: 23, Testament: TestamentOld, Group: GroupWisdom},
	{Name: "Proverbs", Abbreviation: "Prv", Order: 24, Testament: TestamentOld, Group: GroupWisdom},
	{Name: "Ecclesiastes", Abbreviation: "Eccl", Order: 25, Testament: TestamentOld, Group: GroupWisdom},
	{Name: "Song of Songs", Abbreviation: "Sg", Order: 26, Testament: TestamentOld, Group: GroupWisdom},
	{Name: "Wisdom", Abbreviation: "Wis", Order: 27, Testament: TestamentOld, Group: GroupWisdom, IsDeuterocanonical: true},
	{Name: "Sirach", Abbreviation: "Sir", Order: 28, Testament: TestamentOld, Group: GroupWisdom, IsDeuterocanonical: true},

	// ── Prophets ──────────────────────────────────────────────────────────────
	{Name: "Isaiah", Abbreviation: "Is", Order: 29, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Jeremiah", Abbreviation: "Jer", Order: 30, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Lamentations", Abbreviation: "Lam", Order: 31, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Baruch", Abbreviation: "Bar", Order: 32, Testament: TestamentOld, Group: GroupProphets, IsDeuterocanonical: true},
	{Name: "Ezekiel", Abbreviation: "Ez", Order: 33, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Daniel", Abbreviation: "Dn", Order: 34, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Hosea", Abbreviation: "Hos", Order: 35, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Joel", Abbreviation: "Jl", Order: 36, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Amos", Abbreviation: "Am", Order: 37, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Obadiah", Abbreviation: "Ob", Order: 38, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Jonah", Abbreviation: "Jon", Order: 39, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Micah", Abbreviation: "Mi", Order: 40, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Nahum", Abbreviation: "Na", Order: 41, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Habakkuk", Abbreviation: "Hb", Order: 42, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Zephaniah", Abbreviation: "Zep", Order: 43, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Haggai", Abbreviation: "Hg", Order: 44, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Zechariah", Abbreviation: "Zec", Order: 45, Testament: TestamentOld, Group: GroupProphets},
	{Name: "Malachi", Abbreviation: "Mal", Order: 46, Testament: TestamentOld, Group: GroupProphets},

	// ── Gospels ───────────────────────────────────────────────────────────────
	{Name: "Matthew", Abbreviation: "Mt", Order: 47, Testament: TestamentNew, Group: GroupGospels},
	{Name: "Mark", Abbreviation: "Mk", Order: 48, Testament: TestamentNew, Group: GroupGospels},
	{Name: "Luke", Abbreviation: "Lk", Order: 49, Testament: TestamentNew, Group: GroupGospels},
	{Name: "John", Abbreviation: "Jn", Order: 50, Testament: TestamentNew, Group: GroupGospels},

	// ── Acts ──────────────────────────────────────────────────────────────────
	{Name: "Acts of the Apostles", Abbreviation: "Acts", Order: 51, Testament: TestamentNew, Group: GroupActs},

	// ── Epistles ──────────────────────────────────────────────────────────────
	{Name: "Romans", Abbreviation: "Rom", Order: 52, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "1 Corinthians", Abbreviation: "1 Cor", Order: 53, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "2 Corinthians", Abbreviation: "2 Cor", Order: 54, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Galatians", Abbreviation: "Gal", Order: 55, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Ephesians", Abbreviation: "Eph", Order: 56, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Philippians", Abbreviation: "Phil", Order: 57, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Colossians", Abbreviation: "Col", Order: 58, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "1 Thessalonians", Abbreviation: "1 Thes", Order: 59, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "2 Thessalonians", Abbreviation: "2 Thes", Order: 60, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "1 Timothy", Abbreviation: "1 Tm", Order: 61, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "2 Timothy", Abbreviation: "2 Tm", Order: 62, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Titus", Abbreviation: "Ti", Order: 63, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Philemon", Abbreviation: "Phlm", Order: 64, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Hebrews", Abbreviation: "Heb", Order: 65, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "James", Abbreviation: "Jas", Order: 66, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "1 Peter", Abbreviation: "1 Pt", Order: 67, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "2 Peter", Abbreviation: "2 Pt", Order: 68, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "1 John", Abbreviation: "1 Jn", Order: 69, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "2 John", Abbreviation: "2 Jn", Order: 70, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "3 John", Abbreviation: "3 Jn", Order: 71, Testament: TestamentNew, Group: GroupEpistles},
	{Name: "Jude", Abbreviation: "Jude", Order: 72, Testament: TestamentNew, Group: GroupEpistles},

	// ── Revelation ────────────────────────────────────────────────────────────
	{Name: "Revelation", Abbreviation: "Rv", Order: 73, Testament: TestamentNew, Group: GroupRevelation},
}
