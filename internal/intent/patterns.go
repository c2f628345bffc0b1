package intent

import "github.com/bafoka-network/voice-assistant/internal/ports"

// patternSet groups the match material for one intent. Order in the table
// matters: on equal scores the earlier intent wins.
type patternSet struct {
	intent   ports.Intent
	keywords []string
	context  []string
	phrases  []string
}

var intentPatterns = []patternSet{
	{
		intent: ports.IntentAccountCreation,
		keywords: []string{
			// EN
			"create", "open", "new", "register", "sign up", "signup",
			"set up", "setup", "make", "start", "begin", "join",
			"enroll", "enrol", "create profile", "register me",
			// FR
			"créer", "ouvrir", "inscription", "inscrire", "s'inscrire",
			"enregistrer", "crée", "ouvre", "nouveau", "nouvelle",
			"creer", "ouvrir un compte", "creer un compte",
		},
		context: []string{
			"account", "profile", "registration", "member", "compte",
			"adhésion", "membre", "profil", "inscription",
		},
		phrases: []string{
			// EN
			"create account", "open account", "new account",
			"sign up", "register", "want an account", "need an account",
			"get an account", "make an account", "start an account",
			"create an account", "open an account", "i want to register",
			"i want to create an account", "help me create an account",
			// FR
			"créer un compte", "ouvrir un compte", "je veux créer un compte",
			"je veux ouvrir un compte", "aide moi à créer un compte",
			"je veux m'inscrire", "inscris moi", "je veux un compte",
			"creer un compte", "ouvrir un compte",
		},
	},
	{
		intent: ports.IntentViewAccount,
		keywords: []string{
			// EN
			"view", "show", "see", "check", "display", "look",
			"account info", "account details", "profile", "my account",
			"my profile", "who am i", "account status",
			// FR
			"mon compte", "voir", "afficher", "consulter", "profil",
			"mes infos", "mes informations", "détails", "details",
			"etat", "statut", "informations du compte",
		},
		context: []string{
			"account", "profile", "info", "information", "details", "my", "compte",
			"profil", "statut", "état", "etat", "coordonnées", "coordonnees",
		},
		phrases: []string{
			// EN
			"view account", "show account", "my account", "account details",
			"account info", "account information", "see my account",
			"check my account", "view my profile", "show my profile",
			"what is my account", "display account", "account status",
			"view my details", "show my details", "see my profile",
			// FR
			"voir mon compte", "afficher mon compte", "consulter mon compte",
			"voir mon profil", "afficher mon profil", "mes informations",
			"informations de mon compte", "détails de mon compte", "details de mon compte",
		},
	},
	{
		intent: ports.IntentWithdrawal,
		keywords: []string{
			// EN
			"withdraw", "withdrawal", "take out", "cash out",
			"pull out", "get money", "remove", "transfer out",
			"payout", "pay out", "encash",
			// FR
			"retrait", "retirer", "retire", "sortir", "encaisser",
			"retrait d'argent", "retirer de l'argent",
		},
		context: []string{
			"money", "cash", "funds", "amount", "xaf", "fcfa", "argent",
			"solde", "wallet", "portefeuille", "compte", "celo",
		},
		phrases: []string{
			// EN
			"withdraw money", "make withdrawal", "cash out",
			"take out money", "get my money", "withdraw funds",
			"make a withdrawal", "want to withdraw", "i want to withdraw",
			"withdraw from my account", "withdraw from wallet",
			// FR
			"faire un retrait", "retirer de l'argent", "je veux retirer",
			"je veux faire un retrait", "retirer sur mon compte",
			"faire un retrait d'argent", "retirer du wallet", "retirer du portefeuille",
		},
	},
	{
		intent: ports.IntentTopup,
		keywords: []string{
			// EN
			"top up", "topup", "top-up", "deposit", "add", "load",
			"fund", "put in", "transfer in", "recharge", "credit",
			"add funds", "add money", "fund account",
			// FR
			"depot", "dépôt", "deposer", "déposer", "recharger",
			"charger", "crediter", "créditer", "mettre", "ajouter",
			"alimenter", "faire un depot", "faire un dépôt",
		},
		context: []string{
			"money", "funds", "balance", "account", "cash", "amount", "xaf", "fcfa",
			"compte", "solde", "wallet", "portefeuille", "celo",
		},
		phrases: []string{
			// EN
			"add money", "deposit money", "top up", "top-up", "topup",
			"add funds", "load money", "put money", "fund account",
			"add to balance", "make a deposit", "want to deposit",
			"i want to deposit", "i want to top up", "recharge account",
			"put money in my account", "add money to my wallet",
			// FR
			"faire un dépôt", "déposer de l'argent", "recharger mon compte",
			"je veux déposer", "je veux faire un dépôt", "je veux recharger",
			"ajouter de l'argent", "alimenter mon compte", "charger mon wallet",
			"crediter mon compte", "créditer mon compte", "faire un depot",
		},
	},
	{
		intent: ports.IntentTransfer,
		keywords: []string{
			// EN
			"transfer", "send", "send money", "send funds",
			"pay", "payment", "wire", "remit", "remittance",
			"move money", "share money", "give money", "to someone",
			"to friend", "to my friend", "to my wife", "to my husband",
			// FR
			"transfert", "transferer", "transférer", "envoyer", "envoi",
			"virement", "payer", "paiement", "remettre", "faire passer",
			"donner", "à quelqu'un", "a quelqu'un", "à mon ami", "a mon ami",
			"a ma femme", "à ma femme", "à mon mari", "a mon mari",
			// local money-transfer slang
			"momo", "mobile money",
		},
		context: []string{
			// EN
			"to", "receiver", "recipient", "beneficiary", "phone", "number",
			"someone", "friend", "family",
			// FR
			"vers", "à", "a", "destinataire", "bénéficiaire", "beneficiaire",
			"numero", "numéro", "téléphone", "telephone", "contact",
			// money context
			"money", "funds", "amount", "xaf", "fcfa", "argent", "solde",
			"wallet", "portefeuille", "compte", "celo",
		},
		phrases: []string{
			// EN
			"send money", "transfer money", "make a transfer",
			"i want to transfer", "i want to send money",
			"send to", "transfer to", "pay someone", "pay my friend",
			"send funds to", "transfer funds to", "move money to",
			// FR
			"envoyer de l'argent", "faire un transfert", "faire un virement",
			"je veux envoyer", "je veux transférer", "je veux transferer",
			"envoyer à", "transférer à", "transferer a", "payer quelqu'un",
			"envoyer de l'argent à", "faire passer de l'argent",
		},
	},
	{
		intent: ports.IntentBalanceInquiry,
		keywords: []string{
			// EN
			"balance", "how much", "check", "available",
			"status", "amount", "total", "wallet",
			// FR
			"solde", "combien", "disponible", "montant", "total",
			"portefeuille",
		},
		context: []string{
			"account", "money", "have", "funds", "my", "wallet", "compte",
			"solde", "celo", "xaf", "fcfa", "portefeuille",
		},
		phrases: []string{
			// EN
			"check balance", "my balance", "account balance",
			"how much money", "how much do i have", "available balance",
			"what is my balance", "show balance", "check my balance",
			"what do i have", "my account balance", "my wallet balance",
			// FR
			"quel est mon solde", "mon solde", "solde du compte",
			"solde du wallet", "solde du portefeuille", "je veux mon solde",
			"combien j'ai", "combien il me reste", "montre mon solde",
		},
	},
	{
		intent: ports.IntentTransactionHistory,
		keywords: []string{
			// EN
			"history", "transactions", "statement", "activity",
			"records", "past", "previous", "recent",
			// FR
			"historique", "relevé", "releve", "activité", "activite",
			"opérations", "operations", "mouvements",
		},
		context: []string{
			"transaction", "payment", "transfer", "account", "compte",
			"wallet", "portefeuille", "celo",
		},
		phrases: []string{
			// EN
			"transaction history", "my transactions", "past transactions",
			"recent activity", "account history", "show transactions",
			"view history", "statement", "my history", "show history",
			"get transactions", "show my transactions", "list transactions",
			// FR
			"voir mes transactions", "historique de transactions",
			"historique des transactions", "relevé de compte", "releve de compte",
			"liste des transactions", "voir l'historique", "montre l'historique",
			"mouvements du compte", "operations du compte",
		},
	},
	{
		intent: ports.IntentDashboard,
		keywords: []string{
			// EN
			"dashboard", "statistics", "stats", "analytics", "overview",
			"summary", "admin", "reports", "report", "metrics",
			"registrations", "holders", "all accounts", "all users",
			"total amount", "total transactions",
			// FR
			"tableau de bord", "statistiques", "stats", "analytique",
			"aperçu", "apercu", "résumé", "resume", "rapports", "rapport",
			"métriques", "metriques", "inscriptions", "titulaires",
			"détenteurs", "detenteurs", "tous les comptes", "tous les utilisateurs",
			"montant total", "total des transactions",
		},
		context: []string{
			// EN
			"view", "show", "see", "check", "display", "get",
			"system", "platform", "overall", "global",
			// FR
			"voir", "afficher", "consulter", "système", "systeme",
			"plateforme", "global", "général", "general",
		},
		phrases: []string{
			// EN
			"show dashboard", "view dashboard", "open dashboard",
			"show statistics", "view statistics", "show stats", "view stats",
			"registration statistics", "registration stats", "signup stats",
			"show registrations", "view registrations", "how many registrations",
			"account holders", "show holders", "view holders", "list holders",
			"all account holders", "list all accounts", "show all users",
			"total transaction amount", "transaction totals", "show totals",
			"platform overview", "system overview", "show overview",
			"show analytics", "view analytics", "get reports",
			// FR
			"voir le tableau de bord", "afficher le tableau de bord",
			"ouvrir le tableau de bord", "montrer le tableau de bord",
			"voir les statistiques", "afficher les statistiques",
			"statistiques d'inscription", "stats d'inscription",
			"voir les inscriptions", "afficher les inscriptions",
			"combien d'inscriptions", "nombre d'inscriptions",
			"titulaires de comptes", "voir les titulaires", "liste des titulaires",
			"détenteurs de comptes", "liste des détenteurs",
			"tous les comptes", "afficher tous les comptes",
			"montant total des transactions", "total des transactions",
			"aperçu de la plateforme", "aperçu général", "vue d'ensemble",
		},
	},
	{
		intent: ports.IntentGreeting,
		keywords: []string{
			"hello", "hi", "hey", "good morning", "good afternoon",
			"good evening", "greetings", "howdy",
			"bonjour", "salut", "coucou", "bonsoir",
		},
		phrases: []string{"hello there", "hi there", "hey there", "bonjour à vous", "salut à toi"},
	},
	{
		intent: ports.IntentPasswordReset,
		keywords: []string{
			// EN
			"reset", "forgot", "forgotten", "lost", "recover",
			// FR
			"réinitialiser", "reinitialiser", "oublié", "oublie",
			"perdu", "récupérer", "recuperer",
		},
		context: []string{
			"password", "pin", "code", "mot de passe", "mdp",
		},
		phrases: []string{
			// EN
			"reset password", "forgot password", "forgot my password",
			"lost password", "reset my password", "recover password",
			"i forgot my password", "password reset", "forgot pin",
			"reset pin", "lost my pin",
			// FR
			"réinitialiser mot de passe", "mot de passe oublié",
			"j'ai oublié mon mot de passe", "récupérer mot de passe",
			"reinitialiser mot de passe", "oublié mot de passe",
			"réinitialiser mon mot de passe", "pin oublié",
		},
	},
	{
		intent: ports.IntentPasswordChange,
		keywords: []string{
			// EN
			"change", "update", "modify", "new password",
			// FR
			"changer", "modifier", "mettre à jour", "nouveau",
		},
		context: []string{
			"password", "pin", "code", "mot de passe", "mdp",
		},
		phrases: []string{
			// EN
			"change password", "change my password", "update password",
			"new password", "modify password", "change pin",
			"update my password", "i want to change my password",
			"set new password", "change my pin",
			// FR
			"changer mot de passe", "changer mon mot de passe",
			"modifier mot de passe", "nouveau mot de passe",
			"mettre à jour mot de passe", "changer le mot de passe",
			"je veux changer mon mot de passe", "changer pin",
			"modifier mon mot de passe",
		},
	},
	{
		intent: ports.IntentWhatsappLink,
		keywords: []string{
			// EN
			"whatsapp", "link", "connect", "associate",
			// FR
			"lier", "associer", "connecter", "liaison",
		},
		context: []string{
			"whatsapp", "wa", "account", "phone", "number",
			"compte", "numéro", "numero", "téléphone", "telephone",
		},
		phrases: []string{
			// EN
			"link whatsapp", "connect whatsapp", "whatsapp link",
			"link my whatsapp", "connect my whatsapp",
			"associate whatsapp", "add whatsapp", "setup whatsapp",
			"link whatsapp account", "connect whatsapp number",
			// FR
			"lier whatsapp", "connecter whatsapp", "associer whatsapp",
			"lier mon whatsapp", "connecter mon whatsapp",
			"liaison whatsapp", "ajouter whatsapp",
			"lier compte whatsapp", "associer mon whatsapp",
		},
	},
	{
		intent: ports.IntentGoodbye,
		keywords: []string{
			"bye", "goodbye", "see you", "thanks", "thank you",
			"done", "exit", "quit", "finished",
			"merci", "au revoir", "à bientôt", "a bientot", "bonne journée", "bonne journee",
		},
		phrases: []string{
			"thank you", "thanks bye", "goodbye", "that is all",
			"i'm done", "no more", "nothing else", "that's all",
			"merci beaucoup", "c'est tout", "rien d'autre",
		},
	},
	{
		intent: ports.IntentConfirmation,
		keywords: []string{
			"yes", "yeah", "yep", "correct", "confirm", "sure",
			"ok", "okay", "right", "exactly", "affirmative",
			"proceed",
			"oui", "ouais", "d'accord", "okey", "parfait", "exact",
		},
		phrases: []string{"that's right", "that is correct", "go ahead", "sounds good", "c'est bon", "c'est correct"},
	},
	{
		intent: ports.IntentDenial,
		keywords: []string{
			"no", "nope", "cancel", "stop", "wrong", "incorrect",
			"nevermind", "never mind", "forget it",
			"non", "pas du tout", "annule", "annuler", "stop", "laisse", "laissez",
		},
		phrases: []string{"no thanks", "cancel that", "forget it", "not right", "non merci", "annule ça", "annule ca"},
	},
}

// Off-topic list stays short on purpose: none of these words should ever
// appear in a legitimate banking request.
var blockedPhrases = []string{
	"weather", "forecast", "temperature", "joke", "funny",
	"story", "recipe", "movie", "music", "song", "game",
	"president", "politics", "write code", "programming",
	"homework", "essay", "translate",
}
