package catalog

import "github.com/rbndelrio/microsoft-teams-stickers-app/pkg/stickers"

// entries is the fixed set of externally sourced stickers merged into every
// published manifest. The table is materialized once at compile time; it is
// not persisted and not editable through the lifecycle API.
var entries = []stickers.ManifestEntry{
	{Name: "1000", Keywords: []string{"1000", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/1000.png"},
	{Name: "2cents", Keywords: []string{"2cents", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/2cents.jpg"},
	{Name: "420", Keywords: []string{"420", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/420.png"},
	{Name: "a-parrot", Keywords: []string{"a", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/a-parrot.gif"},
	{Name: "adam", Keywords: []string{"adam", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/adam.gif"},
	{Name: "airhorn", Keywords: []string{"airhorn", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/airhorn.png"},
	{Name: "anarchy", Keywords: []string{"anarchy", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/anarchy.jpg"},
	{Name: "angrytrump", Keywords: []string{"angrytrump", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/angrytrump.png"},
	{Name: "avocado-toast", Keywords: []string{"avocado", "toast", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/avocado-toast.png"},
	{Name: "awyeah", Keywords: []string{"awyeah", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/awyeah.gif"},
	{Name: "ayy", Keywords: []string{"ayy", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/ayy.png"},
	{Name: "babyrich", Keywords: []string{"babyrich", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/babyrich.jpg"},
	{Name: "bacon-strips", Keywords: []string{"bacon", "strips", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/bacon-strips.png"},
	{Name: "batman", Keywords: []string{"batman", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/batman.gif"},
	{Name: "batman-approves", Keywords: []string{"batman", "approves", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/batman-approves.png"},
	{Name: "blondeparrot", Keywords: []string{"blondeparrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/blondeparrot.gif"},
	{Name: "bohn", Keywords: []string{"bohn", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/bohn.png"},
	{Name: "bored-parrot", Keywords: []string{"bored", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/bored-parrot.gif"},
	{Name: "botus", Keywords: []string{"botus", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/botus.png"},
	{Name: "bunz", Keywords: []string{"bunz", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/bunz.png"},
	{Name: "businesscat", Keywords: []string{"businesscat", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/businesscat.jpg"},
	{Name: "catparty", Keywords: []string{"catparty", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/catparty.gif"},
	{Name: "caveman", Keywords: []string{"caveman", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/caveman.jpg"},
	{Name: "chainsaw-drone", Keywords: []string{"chainsaw", "drone", "chainsaw-drone", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/chainsaw-drone.gif"},
	{Name: "champcheers", Keywords: []string{"champcheers", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/champcheers.gif"},
	{Name: "chancleta", Keywords: []string{"chancleta", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/chancleta.jpg"},
	{Name: "charles", Keywords: []string{"charles", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/charles.jpg"},
	{Name: "charmander", Keywords: []string{"charmander", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/charmander.gif"},
	{Name: "cheers", Keywords: []string{"cheers", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/cheers.png"},
	{Name: "client-email", Keywords: []string{"client", "email", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/client-email.png"},
	{Name: "comic-sans", Keywords: []string{"comic", "sans", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/comic-sans.png"},
	{Name: "communism", Keywords: []string{"communism", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/communism.jpg"},
	{Name: "compton", Keywords: []string{"compton", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/compton.jpg"},
	{Name: "conga-parrot-down", Keywords: []string{"conga", "parrot", "down", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/conga-parrot-down.gif"},
	{Name: "congaparrot", Keywords: []string{"congaparrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/congaparrot.gif"},
	{Name: "connor", Keywords: []string{"connor", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/connor.png"},
	{Name: "covfefe", Keywords: []string{"covfefe", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/covfefe.gif"},
	{Name: "crossed", Keywords: []string{"crossed", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/crossed.png"},
	{Name: "dancingpusheen", Keywords: []string{"dancingpusheen", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/dancingpusheen.gif"},
	{Name: "dealwithitparrot", Keywords: []string{"dealwithitparrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/dealwithitparrot.gif"},
	{Name: "devil_parrot", Keywords: []string{"devil", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/devil_parrot.gif"},
	{Name: "do-it-live", Keywords: []string{"do", "it", "live", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/do-it-live.png"},
	{Name: "do-it-palpatine", Keywords: []string{"do", "it", "palpatine", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/do-it-palpatine.gif"},
	{Name: "do-it-shia", Keywords: []string{"do", "it", "shia", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/do-it-shia.gif"},
	{Name: "doge", Keywords: []string{"doge", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/doge.png"},
	{Name: "dontannoyme", Keywords: []string{"dontannoyme", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/dontannoyme.png"},
	{Name: "dontmesswithme", Keywords: []string{"dontmesswithme", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/dontmesswithme.png"},
	{Name: "doom", Keywords: []string{"doom", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/doom.png"},
	{Name: "dp", Keywords: []string{"dp", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/dp.png"},
	{Name: "drone", Keywords: []string{"drone", "chainsaw-drone", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/drone.gif"},
	{Name: "dumpster-fire", Keywords: []string{"dumpster", "fire", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/dumpster-fire.gif"},
	{Name: "eeeee", Keywords: []string{"eeeee", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/eeeee.gif"},
	{Name: "eric", Keywords: []string{"eric", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/eric.png"},
	{Name: "facepalm", Keywords: []string{"facepalm", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/facepalm.jpg"},
	{Name: "fakenews", Keywords: []string{"fakenews", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/fakenews.gif"},
	{Name: "fan", Keywords: []string{"fan", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/fan.gif"},
	{Name: "fast-parrot", Keywords: []string{"fast", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/fast-parrot.gif"},
	{Name: "fidget-spinner", Keywords: []string{"fidget", "spinner", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/fidget-spinner.gif"},
	{Name: "fiesta-parrot", Keywords: []string{"fiesta", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/fiesta-parrot.gif"},
	{Name: "finger-wag", Keywords: []string{"finger", "wag", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/finger-wag.gif"},
	{Name: "fiwi", Keywords: []string{"fiwi", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/fiwi.gif"},
	{Name: "golf-boi", Keywords: []string{"golf", "boi", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/golf-boi.png"},
	{Name: "grande-coffee", Keywords: []string{"grande", "coffee", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/grande-coffee.png"},
	{Name: "guyparrot", Keywords: []string{"guyparrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/guyparrot.gif"},
	{Name: "have-some-duck-tape", Keywords: []string{"have", "some", "duck", "tape", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/have-some-duck-tape.png"},
	{Name: "holdthis", Keywords: []string{"holdthis", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/holdthis.png"},
	{Name: "homer-back-away", Keywords: []string{"homer", "back", "away", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/homer-back-away.gif"},
	{Name: "hpparrot", Keywords: []string{"hpparrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/hpparrot.gif"},
	{Name: "ice-cream-parrot", Keywords: []string{"ice", "cream", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/ice-cream-parrot.gif"},
	{Name: "ideas", Keywords: []string{"ideas", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/ideas.png"},
	{Name: "im", Keywords: []string{"im", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/im.png"},
	{Name: "imsmiley", Keywords: []string{"imsmiley", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/imsmiley.png"},
	{Name: "jordan", Keywords: []string{"jordan", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/jordan.png"},
	{Name: "keel", Keywords: []string{"keel", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/keel.jpg"},
	{Name: "keel1", Keywords: []string{"keel1", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/keel1.png"},
	{Name: "keel2", Keywords: []string{"keel2", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/keel2.png"},
	{Name: "kermit-flail", Keywords: []string{"kermit", "flail", "kermit-flail", "muppet", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/kermit-flail.gif"},
	{Name: "klafferman", Keywords: []string{"klafferman", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/klafferman.png"},
	{Name: "krogers", Keywords: []string{"krogers", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/krogers.png"},
	{Name: "leftshark", Keywords: []string{"leftshark", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/leftshark.gif"},
	{Name: "loading", Keywords: []string{"loading", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/loading.gif"},
	{Name: "lorp", Keywords: []string{"lorp", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/lorp.png"},
	{Name: "love-parrot", Keywords: []string{"love", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/love-parrot.gif"},
	{Name: "magahat", Keywords: []string{"magahat", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/magahat.jpg"},
	{Name: "make-it-pop", Keywords: []string{"make", "it", "pop", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/make-it-pop.png"},
	{Name: "make-logo-bigger", Keywords: []string{"make", "logo", "bigger", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/make-logo-bigger.png"},
	{Name: "matt", Keywords: []string{"matt", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/matt.png"},
	{Name: "mattangry", Keywords: []string{"mattangry", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/mattangry.png"},
	{Name: "mbs", Keywords: []string{"mbs", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/mbs.gif"},
	{Name: "megsdad", Keywords: []string{"megsdad", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/megsdad.png"},
	{Name: "muppet", Keywords: []string{"muppet", "kermit-flail", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/muppet.gif"},
	{Name: "neat", Keywords: []string{"neat", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/neat.gif"},
	{Name: "netflix", Keywords: []string{"netflix", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/netflix.png"},
	{Name: "no-step-on-snek", Keywords: []string{"no", "step", "on", "snek", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/no-step-on-snek.jpg"},
	{Name: "not-100", Keywords: []string{"not", "100", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/not-100.png"},
	{Name: "nyancat", Keywords: []string{"nyancat", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/nyancat.gif"},
	{Name: "paid", Keywords: []string{"paid", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/paid.png"},
	{Name: "paid-1", Keywords: []string{"paid", "1", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/paid-1.png"},
	{Name: "paid-2", Keywords: []string{"paid", "2", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/paid-2.png"},
	{Name: "panic", Keywords: []string{"panic", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/panic.jpg"},
	{Name: "parrotdad", Keywords: []string{"parrotdad", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/parrotdad.gif"},
	{Name: "parrotliftoff", Keywords: []string{"parrotliftoff", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/parrotliftoff.gif"},
	{Name: "party-dumpster-fire", Keywords: []string{"party", "dumpster", "fire", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/party-dumpster-fire.gif"},
	{Name: "party-parrot", Keywords: []string{"party", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/party-parrot.gif"},
	{Name: "party-weed", Keywords: []string{"party", "weed", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/party-weed.gif"},
	{Name: "peace", Keywords: []string{"peace", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/peace.jpg"},
	{Name: "peak", Keywords: []string{"peak", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/peak.png"},
	{Name: "pinwheel", Keywords: []string{"pinwheel", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/pinwheel.gif"},
	{Name: "pizzaspin", Keywords: []string{"pizzaspin", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/pizzaspin.gif"},
	{Name: "plane", Keywords: []string{"plane", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/plane.gif"},
	{Name: "please", Keywords: []string{"please", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/please.png"},
	{Name: "pointer", Keywords: []string{"pointer", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/pointer.png"},
	{Name: "police", Keywords: []string{"police", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/police.gif"},
	{Name: "pool", Keywords: []string{"pool", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/pool.png"},
	{Name: "pug", Keywords: []string{"pug", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/pug.png"},
	{Name: "red-tape", Keywords: []string{"red", "tape", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/red-tape.jpg"},
	{Name: "reverseconga-parrot", Keywords: []string{"reverseconga", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/reverseconga-parrot.gif"},
	{Name: "rich", Keywords: []string{"rich", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/rich.png"},
	{Name: "richangry", Keywords: []string{"richangry", "richispissed", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/richangry.gif"},
	{Name: "richard", Keywords: []string{"richard", "richard-petty", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/richard.png"},
	{Name: "richard-petty", Keywords: []string{"richard", "petty", "richard-petty", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/richard-petty.png"},
	{Name: "richispissed", Keywords: []string{"richispissed", "richangry", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/richispissed.gif"},
	{Name: "rivers", Keywords: []string{"rivers", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/rivers.png"},
	{Name: "roll", Keywords: []string{"roll", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/roll.png"},
	{Name: "sad-parrot", Keywords: []string{"sad", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/sad-parrot.gif"},
	{Name: "sadegg", Keywords: []string{"sadegg", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/sadegg.png"},
	{Name: "salt", Keywords: []string{"salt", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/salt.png"},
	{Name: "sheldon", Keywords: []string{"sheldon", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/sheldon.jpg"},
	{Name: "shruggs", Keywords: []string{"shruggs", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/shruggs.png"},
	{Name: "shuffle-parrot", Keywords: []string{"shuffle", "parrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/shuffle-parrot.gif"},
	{Name: "sillypig", Keywords: []string{"sillypig", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/sillypig.gif"},
	{Name: "sketch", Keywords: []string{"sketch", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/sketch.jpg"},
	{Name: "spoopy", Keywords: []string{"spoopy", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/spoopy.png"},
	{Name: "stay-fresh", Keywords: []string{"stay", "fresh", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/stay-fresh.png"},
	{Name: "stayfresh", Keywords: []string{"stayfresh", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/stayfresh.png"},
	{Name: "suitup", Keywords: []string{"suitup", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/suitup.gif"},
	{Name: "theartistprince", Keywords: []string{"theartistprince", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/theartistprince.jpg"},
	{Name: "thisisfine", Keywords: []string{"thisisfine", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/thisisfine.png"},
	{Name: "thisisfinefire", Keywords: []string{"thisisfinefire", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/thisisfinefire.gif"},
	{Name: "totes", Keywords: []string{"totes", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/totes.gif"},
	{Name: "truth", Keywords: []string{"truth", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/truth.png"},
	{Name: "ukiddingme", Keywords: []string{"ukiddingme", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/ukiddingme.png"},
	{Name: "wat", Keywords: []string{"wat", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/wat.jpg"},
	{Name: "wendyparrot", Keywords: []string{"wendyparrot", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/wendyparrot.gif"},
	{Name: "whatintarnation", Keywords: []string{"whatintarnation", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/whatintarnation.jpg"},
	{Name: "whoa", Keywords: []string{"whoa", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/whoa.png"},
	{Name: "whysoserious", Keywords: []string{"whysoserious", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/whysoserious.gif"},
	{Name: "william", Keywords: []string{"william", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/william.jpg"},
	{Name: "wordpress", Keywords: []string{"wordpress", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/wordpress.png"},
	{Name: "wotintarnation-2", Keywords: []string{"wotintarnation", "2", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/wotintarnation-2.gif"},
	{Name: "xzibit", Keywords: []string{"xzibit", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/xzibit.png"},
	{Name: "yike", Keywords: []string{"yike", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/yike.png"},
	{Name: "zombie_hand", Keywords: []string{"zombie", "hand", "slack"}, ImageURI: "https://elcti4uwcvopi.blob.core.windows.net/stickers/slack/zombie_hand.png"},
}
