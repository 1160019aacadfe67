package items

// WordFindingCount is how many stimuli a word-finding session draws.
const WordFindingCount = 10

// stimulus is one entry of the built-in word-finding bank.
type stimulus struct {
	name     string
	alts     []string
	category string
	use      string // completes "You use it ..."
	location string // completes "You usually keep it ..."
	features string // completes "It ..."
	color    string
	image    string
}

// wordFindingBank is the built-in object-naming stimulus set. Pictures are
// shipped alongside the binary; the names are common household objects with
// their accepted variants.
var wordFindingBank = []stimulus{
	{name: "scissors", category: "desk drawer", use: "to cut paper", location: "in a drawer", features: "has two blades and finger loops", image: "stimuli/scissors.png"},
	{name: "toothbrush", category: "bathroom", use: "to clean your teeth", location: "by the sink", features: "has bristles on one end", image: "stimuli/toothbrush.png"},
	{name: "umbrella", category: "hall closet", use: "to stay dry in the rain", location: "by the front door", features: "opens up over your head", image: "stimuli/umbrella.png"},
	{name: "kettle", alts: []string{"teakettle", "tea kettle"}, category: "kitchen", use: "to boil water", location: "on the stove", features: "whistles when it's ready", image: "stimuli/kettle.png"},
	{name: "wallet", alts: []string{"billfold", "purse"}, category: "pocket or purse", use: "to carry money and cards", location: "in your pocket", features: "folds in half", image: "stimuli/wallet.png"},
	{name: "glasses", alts: []string{"eyeglasses", "spectacles"}, category: "nightstand", use: "to see clearly", location: "on your nightstand", features: "sits on your nose", image: "stimuli/glasses.png"},
	{name: "hammer", category: "toolbox", use: "to drive nails", location: "in the garage", features: "has a heavy metal head", image: "stimuli/hammer.png"},
	{name: "spoon", category: "kitchen", use: "to eat soup or cereal", location: "in the cutlery drawer", features: "has a small round bowl at the end", image: "stimuli/spoon.png"},
	{name: "pillow", category: "bedroom", use: "to rest your head at night", location: "on your bed", features: "is soft and filled with stuffing", image: "stimuli/pillow.png"},
	{name: "comb", alts: []string{"hairbrush", "brush"}, category: "bathroom", use: "to tidy your hair", location: "near the mirror", features: "has a row of thin teeth", image: "stimuli/comb.png"},
	{name: "clock", category: "living room", use: "to tell the time", location: "on the wall", features: "has hands that go around", image: "stimuli/clock.png"},
	{name: "keys", alts: []string{"key", "keychain"}, category: "hall table", use: "to open your front door", location: "by the door", features: "jingles on a ring", image: "stimuli/keys.png"},
	{name: "telephone", alts: []string{"phone", "cellphone", "mobile"}, category: "living room", use: "to call people", location: "in your pocket or on the table", features: "rings when someone calls", image: "stimuli/telephone.png"},
	{name: "shoe", alts: []string{"shoes", "sneaker"}, category: "closet", use: "to protect your feet outside", location: "by the door", features: "has laces to tie", image: "stimuli/shoe.png"},
	{name: "cup", alts: []string{"mug"}, category: "kitchen", use: "to drink coffee or tea", location: "in the cupboard", features: "has a handle on the side", image: "stimuli/cup.png"},
	{name: "book", category: "bookshelf", use: "to read", location: "on the shelf", features: "has pages you turn", image: "stimuli/book.png"},
	{name: "towel", category: "bathroom", use: "to dry off after a shower", location: "on the rail", features: "is soft and absorbent", image: "stimuli/towel.png"},
	{name: "banana", category: "fruit bowl", use: "to eat as a snack", location: "in the kitchen", features: "you peel it first", color: "yellow", image: "stimuli/banana.png"},
	{name: "chair", category: "dining room", use: "to sit on", location: "at the table", features: "has four legs and a back", image: "stimuli/chair.png"},
	{name: "soap", category: "bathroom", use: "to wash your hands", location: "by the sink", features: "gets slippery when wet", image: "stimuli/soap.png"},
}
