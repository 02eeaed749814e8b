package lookup

// Code tables extracted from the decoded stat-file format. Codes are the
// values written by the game; names are the canonical strings used in
// decoded files and query arguments.

var characterNames = map[int]string{
	0:  "Mario",
	1:  "Luigi",
	2:  "DK",
	3:  "Diddy",
	4:  "Peach",
	5:  "Daisy",
	6:  "Yoshi",
	7:  "Baby Mario",
	8:  "Baby Luigi",
	9:  "Bowser",
	10: "Wario",
	11: "Waluigi",
	12: "Koopa(G)",
	13: "Toad(R)",
	14: "Boo",
	15: "Toadette",
	16: "Shy Guy(R)",
	17: "Birdo",
	18: "Monty",
	19: "Bowser Jr",
	20: "Paratroopa(R)",
	21: "Pianta(B)",
	22: "Pianta(R)",
	23: "Pianta(Y)",
	24: "Noki(B)",
	25: "Noki(R)",
	26: "Noki(G)",
	27: "Bro(H)",
	28: "Toadsworth",
	29: "Toad(B)",
	30: "Toad(Y)",
	31: "Toad(G)",
	32: "Toad(P)",
	33: "Magikoopa(B)",
	34: "Magikoopa(R)",
	35: "Magikoopa(G)",
	36: "Magikoopa(Y)",
	37: "King Boo",
	38: "Petey",
	39: "Dixie",
	40: "Goomba",
	41: "Paragoomba",
	42: "Koopa(R)",
	43: "Paratroopa(G)",
	44: "Shy Guy(B)",
	45: "Shy Guy(Y)",
	46: "Shy Guy(G)",
	47: "Shy Guy(Bk)",
	48: "Dry Bones(Gy)",
	49: "Dry Bones(G)",
	50: "Dry Bones(R)",
	51: "Dry Bones(B)",
	52: "Bro(F)",
	53: "Bro(B)",
}

var characterNamesNoVariant = map[int]string{
	0:  "Mario",
	1:  "Luigi",
	2:  "DK",
	3:  "Diddy",
	4:  "Peach",
	5:  "Daisy",
	6:  "Yoshi",
	7:  "Baby Mario",
	8:  "Baby Luigi",
	9:  "Bowser",
	10: "Wario",
	11: "Waluigi",
	12: "Koopa",
	13: "Toad",
	14: "Boo",
	15: "Toadette",
	16: "Shy Guy",
	17: "Birdo",
	18: "Monty",
	19: "Bowser Jr",
	20: "Paratroopa",
	21: "Pianta",
	22: "Pianta",
	23: "Pianta",
	24: "Noki",
	25: "Noki",
	26: "Noki",
	27: "Bro",
	28: "Toadsworth",
	29: "Toad",
	30: "Toad",
	31: "Toad",
	32: "Toad",
	33: "Magikoopa",
	34: "Magikoopa",
	35: "Magikoopa",
	36: "Magikoopa",
	37: "King Boo",
	38: "Petey",
	39: "Dixie",
	40: "Goomba",
	41: "Paragoomba",
	42: "Koopa",
	43: "Paratroopa",
	44: "Shy Guy",
	45: "Shy Guy",
	46: "Shy Guy",
	47: "Shy Guy",
	48: "Dry Bones",
	49: "Dry Bones",
	50: "Dry Bones",
	51: "Dry Bones",
	52: "Bro",
	53: "Bro",
}

var stadiumNames = map[int]string{
	0: "Mario Stadium",
	1: "Bowser Castle",
	2: "Wario Palace",
	3: "Yoshi Park",
	4: "Peach Garden",
	5: "DK Jungle",
	6: "Toy Field",
}

var contactTypes = map[int]string{
	255: "Miss",
	0:   "Sour - Left",
	1:   "Nice - Left",
	2:   "Perfect",
	3:   "Nice - Right",
	4:   "Sour - Right",
}

var hands = map[int]string{
	0: "Left",
	1: "Right",
}

var inputDirections = map[int]string{
	0:  "",
	1:  "Left",
	2:  "Right",
	3:  "Left+Right",
	4:  "Down",
	5:  "Left+Down",
	6:  "Right+Down",
	7:  "Left+Right+Down",
	8:  "Up",
	9:  "Left+Up",
	10: "Right+Up",
	11: "Left+Right+Up",
	13: "Left+Down+Up",
	14: "Right+Down+Up",
	15: "Left+Right+Down+Up",
}

var pitchTypes = map[int]string{
	0: "Curve",
	1: "Charge",
	2: "ChangeUp",
}

var chargeTypes = map[int]string{
	0: "N/A",
	2: "Slider",
	3: "Perfect",
}

var swingTypes = map[int]string{
	0: "None",
	1: "Slap",
	2: "Charge",
	3: "Star",
	4: "Bunt",
}

var positions = map[int]string{
	0:   "P",
	1:   "C",
	2:   "1B",
	3:   "2B",
	4:   "3B",
	5:   "SS",
	6:   "LF",
	7:   "CF",
	8:   "RF",
	255: "Inv",
}

var fielderActions = map[int]string{
	0: "None",
	2: "Sliding",
	3: "Walljump",
}

var fielderBobbles = map[int]string{
	0:   "None",
	1:   "Slide/stun lock",
	2:   "Fumble",
	3:   "Bobble",
	4:   "Fireball",
	16:  "Garlic knockout",
	255: "None",
}

var stealTypes = map[int]string{
	0:  "None",
	1:  "Ready",
	2:  "Normal",
	3:  "Perfect",
	55: "None",
}

var outTypes = map[int]string{
	0:  "None",
	1:  "Caught",
	2:  "Force",
	3:  "Tag",
	4:  "Force Back",
	16: "Strike-out",
}

var pitchResults = map[int]string{
	0: "HBP",
	1: "BB",
	2: "Ball",
	3: "Strike-looking",
	4: "Strike-swing",
	5: "Strike-bunting",
	6: "Contact",
	7: "Unknown",
}

var primaryContactResults = map[int]string{
	0: "Out",
	1: "Foul",
	2: "Fair",
	3: "Fielded",
	4: "Unknown",
}

var finalResults = map[int]string{
	0:  "None",
	1:  "Strikeout",
	2:  "Walk (BB)",
	3:  "Walk (HBP)",
	4:  "Out",
	5:  "Caught",
	6:  "Caught line-drive",
	7:  "Single",
	8:  "Double",
	9:  "Triple",
	10: "HR",
	11: "Error - Input",
	12: "Error - Chem",
	13: "Bunt",
	14: "SacFly",
	15: "Ground ball double Play",
	16: "Foul catch",
}

var manualSelectStates = map[int]string{
	0: "No Selected Char",
	1: "Selected Other Char",
	2: "Selected This Char",
}
