package prompts

import (
	"fmt"
	"strings"

	"github.com/bafoka-network/voice-assistant/internal/config"
)

// Groupement is a community a member can register under. IDs and tokens
// come from the Bafoka network operators and rarely change.
type Groupement struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

var Groupements = []Groupement{
	{ID: 1, Name: "Batoufam", Token: "MBIP TSWEFAP"},
	{ID: 2, Name: "Fondjomekwet", Token: "MBAM"},
	{ID: 3, Name: "Bameka", Token: "MUNKAP"},
}

// FindGroupement resolves spoken input to a groupement by number or name.
func FindGroupement(input string) (Groupement, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return Groupement{}, false
	}
	for _, g := range Groupements {
		if strings.Contains(needle, fmt.Sprintf("%d", g.ID)) {
			return g, true
		}
		if strings.Contains(needle, strings.ToLower(g.Name)) {
			return g, true
		}
	}
	return Groupement{}, false
}

// FlowGeneral is the pseudo-flow holding responses that belong to no flow.
const FlowGeneral = "general"

// defaultCatalog builds the built-in bilingual texts. Keys follow the
// "<key>_<lang>" convention so a database override can target a single
// language without touching the other.
func defaultCatalog(cfg config.Config) map[string]map[string]string {
	cur := cfg.Currency

	return map[string]map[string]string{
		"account_creation": {
			"start_en": "Welcome to BAFOKA! I'll help you create an account. What is your full name?",
			"start_fr": "Bienvenue chez BAFOKA ! Je vais vous aider à créer un compte. Quel est votre nom complet ?",

			"ask_age_en": "Thank you, {name}! How old are you?",
			"ask_age_fr": "Merci, {name} ! Quel âge avez-vous ?",

			"ask_sex_en": "Got it! Are you male or female?",
			"ask_sex_fr": "Très bien ! Êtes-vous un homme ou une femme ?",

			"ask_groupement_en": "Almost done! Which groupement are you from?\n" +
				"1. Batoufam (MBIP TSWEFAP)\n" +
				"2. Fondjomekwet (MBAM)\n" +
				"3. Bameka (MUNKAP)\n\n" +
				"Please say the number or name.",
			"ask_groupement_fr": "Nous avons presque terminé ! De quel groupement venez-vous ?\n" +
				"1. Batoufam (MBIP TSWEFAP)\n" +
				"2. Fondjomekwet (MBAM)\n" +
				"3. Bameka (MUNKAP)\n\n" +
				"Veuillez dire le numéro ou le nom.",

			"confirm_en": "Let me confirm your information:\n" +
				"• Name: {name}\n" +
				"• Age: {age}\n" +
				"• Sex: {sex}\n" +
				"• Groupement: {groupement_name}\n\n" +
				"Is this correct? Say 'yes' to confirm or 'no' to make changes.",
			"confirm_fr": "Laissez-moi confirmer vos informations :\n" +
				"• Nom : {name}\n" +
				"• Âge : {age}\n" +
				"• Sexe : {sex}\n" +
				"• Groupement : {groupement_name}\n\n" +
				"Est-ce correct ? Dites 'oui' pour confirmer ou 'non' pour modifier.",

			"success_en": "Congratulations {name}! Your account has been created successfully. " +
				"Your account details have been registered. Is there anything else I can help with?",
			"success_fr": "Félicitations {name} ! Votre compte a été créé avec succès. " +
				"Vos informations ont été enregistrées. Puis-je vous aider avec autre chose ?",

			"error_en": "I'm sorry, there was an issue creating your account. Please try again later.",
			"error_fr": "Je suis désolé, un problème est survenu lors de la création de votre compte. Veuillez réessayer plus tard.",

			"invalid_name_en": "I didn't catch your name. Please tell me your full name.",
			"invalid_name_fr": "Je n'ai pas compris votre nom. Veuillez me dire votre nom complet.",

			"invalid_age_en": "Please tell me your age. For example, '25' or '25 years old'.",
			"invalid_age_fr": "Veuillez me dire votre âge. Par exemple, '25' ou '25 ans'.",

			"underage_en": "You must be at least 18 years old to create an account. How old are you?",
			"underage_fr": "Vous devez avoir au moins 18 ans pour créer un compte. Quel âge avez-vous ?",

			"invalid_sex_en": "Please say 'male' or 'female'.",
			"invalid_sex_fr": "Veuillez dire 'homme' ou 'femme'.",

			"invalid_groupement_en": "Please select a groupement by number (1, 2, or 3) or by name.",
			"invalid_groupement_fr": "Veuillez sélectionner un groupement par numéro (1, 2 ou 3) ou par nom.",

			"what_to_change_en": "What would you like to change? Say 'name', 'age', 'sex', or 'groupement'.",
			"what_to_change_fr": "Que souhaitez-vous modifier ? Dites 'nom', 'âge', 'sexe' ou 'groupement'.",

			"confirm_prompt_en": "Please confirm: is all the information correct? Say 'yes' or 'no'.",
			"confirm_prompt_fr": "Veuillez confirmer : toutes les informations sont-elles correctes ? Dites 'oui' ou 'non'.",

			"change_name_en": "Okay, what is your correct full name?",
			"change_name_fr": "D'accord, quel est votre nom complet correct ?",

			"change_age_en": "Okay, how old are you?",
			"change_age_fr": "D'accord, quel âge avez-vous ?",

			"change_sex_en": "Okay, are you male or female?",
			"change_sex_fr": "D'accord, êtes-vous un homme ou une femme ?",

			"change_groupement_en": "Okay, which groupement are you from? Say the number or name.",
			"change_groupement_fr": "D'accord, de quel groupement venez-vous ? Dites le numéro ou le nom.",

			"max_attempts_en": "I'm having trouble understanding. Let's start over. Say 'create account' when ready.",
			"max_attempts_fr": "J'ai du mal à comprendre. Recommençons. Dites 'créer un compte' quand vous êtes prêt.",

			"cancelled_en": "Account creation cancelled. How else can I help you?",
			"cancelled_fr": "Création de compte annulée. Comment puis-je vous aider autrement ?",
		},

		"withdrawal": {
			"start_en": fmt.Sprintf(
				"I'll help you with a withdrawal. How much would you like to withdraw? (Min: %.0f %s, Max: %.0f %s)",
				cfg.WithdrawalMin, cur, cfg.WithdrawalMax, cur),
			"start_fr": fmt.Sprintf(
				"Je vais vous aider à faire un retrait. Quel montant souhaitez-vous retirer ? (Min : %.0f %s, Max : %.0f %s)",
				cfg.WithdrawalMin, cur, cfg.WithdrawalMax, cur),

			"confirm_en": "You want to withdraw {amount} {currency}. Is that correct? Say 'yes' to confirm or 'no' to cancel.",
			"confirm_fr": "Vous souhaitez retirer {amount} {currency}. Est-ce correct ? Dites 'oui' pour confirmer ou 'non' pour annuler.",

			"success_en": "Your withdrawal of {amount} {currency} has been processed successfully!",
			"success_fr": "Votre retrait de {amount} {currency} a été effectué avec succès !",

			"insufficient_funds_en": "Sorry, you don't have enough balance for this withdrawal. Your current balance is {balance} {currency}.",
			"insufficient_funds_fr": "Désolé, votre solde est insuffisant pour ce retrait. Votre solde actuel est de {balance} {currency}.",

			"error_en": "I'm sorry, there was an issue processing your withdrawal. Please try again later.",
			"error_fr": "Je suis désolé, un problème est survenu lors du traitement de votre retrait. Veuillez réessayer plus tard.",

			"invalid_amount_en": fmt.Sprintf(
				"Please provide a valid amount between %.0f and %.0f %s.", cfg.WithdrawalMin, cfg.WithdrawalMax, cur),
			"invalid_amount_fr": fmt.Sprintf(
				"Veuillez fournir un montant valide entre %.0f et %.0f %s.", cfg.WithdrawalMin, cfg.WithdrawalMax, cur),

			"max_attempts_en": "I'm having trouble understanding. Let's try again later.",
			"max_attempts_fr": "J'ai du mal à comprendre. Réessayons plus tard.",

			"cancelled_en": "Withdrawal cancelled. How else can I help you?",
			"cancelled_fr": "Retrait annulé. Comment puis-je vous aider autrement ?",

			"ask_again_en": "Okay, how much would you like to withdraw instead?",
			"ask_again_fr": "D'accord, quel montant souhaitez-vous retirer à la place ?",

			"confirm_prompt_en": "Please confirm: do you want to proceed with this withdrawal? Say 'yes' or 'no'.",
			"confirm_prompt_fr": "Veuillez confirmer : voulez-vous procéder à ce retrait ? Dites 'oui' ou 'non'.",
		},

		"topup": {
			"start_en": fmt.Sprintf(
				"I'll help you top up your account. How much would you like to deposit? (Min: %.0f %s, Max: %.0f %s)",
				cfg.TopupMin, cur, cfg.TopupMax, cur),
			"start_fr": fmt.Sprintf(
				"Je vais vous aider à recharger votre compte. Quel montant souhaitez-vous déposer ? (Min : %.0f %s, Max : %.0f %s)",
				cfg.TopupMin, cur, cfg.TopupMax, cur),

			"confirm_en": "You want to deposit {amount} {currency}. Is that correct? Say 'yes' to confirm or 'no' to cancel.",
			"confirm_fr": "Vous souhaitez déposer {amount} {currency}. Est-ce correct ? Dites 'oui' pour confirmer ou 'non' pour annuler.",

			"success_en": "Your deposit of {amount} {currency} has been received. Your new balance is {new_balance} {currency}.",
			"success_fr": "Votre dépôt de {amount} {currency} a été reçu. Votre nouveau solde est de {new_balance} {currency}.",

			"error_en": "I'm sorry, there was an issue processing your deposit. Please try again later.",
			"error_fr": "Je suis désolé, un problème est survenu lors du traitement de votre dépôt. Veuillez réessayer plus tard.",

			"invalid_amount_en": fmt.Sprintf(
				"Please provide a valid amount between %.0f and %.0f %s.", cfg.TopupMin, cfg.TopupMax, cur),
			"invalid_amount_fr": fmt.Sprintf(
				"Veuillez fournir un montant valide entre %.0f et %.0f %s.", cfg.TopupMin, cfg.TopupMax, cur),

			"max_attempts_en": "I'm having trouble understanding. Let's try again later.",
			"max_attempts_fr": "J'ai du mal à comprendre. Réessayons plus tard.",

			"cancelled_en": "Deposit cancelled. How else can I help you?",
			"cancelled_fr": "Dépôt annulé. Comment puis-je vous aider autrement ?",

			"ask_again_en": "Okay, how much would you like to deposit instead?",
			"ask_again_fr": "D'accord, quel montant souhaitez-vous déposer à la place ?",

			"confirm_prompt_en": "Please confirm: do you want to proceed with this deposit? Say 'yes' or 'no'.",
			"confirm_prompt_fr": "Veuillez confirmer : voulez-vous procéder à ce dépôt ? Dites 'oui' ou 'non'.",
		},

		"transfer": {
			"start_en": "Sure, who do you want to send money to? Please share the receiver phone number.",
			"start_fr": "D'accord, à qui voulez-vous envoyer de l'argent ? Donnez le numéro du bénéficiaire.",

			"ask_receiver_retry_en": "I couldn't read the receiver phone number. Please send digits only (example: 690123456).",
			"ask_receiver_retry_fr": "Je n'ai pas compris le numéro. Envoyez uniquement les chiffres (ex: 690123456).",

			"ask_amount_en": fmt.Sprintf("How much do you want to send? (in %s)", cur),
			"ask_amount_fr": fmt.Sprintf("Quel montant voulez-vous envoyer ? (en %s)", cur),

			"ask_amount_retry_en": fmt.Sprintf("I couldn't understand the amount. Please send a number like '10000' (in %s).", cur),
			"ask_amount_retry_fr": fmt.Sprintf("Je n'ai pas compris le montant. Envoyez un nombre comme '10000' (en %s).", cur),

			"ask_pin_en": "Please enter your PIN to confirm the transfer.",
			"ask_pin_fr": "Veuillez entrer votre code PIN pour confirmer le transfert.",

			"ask_pin_retry_en": "Invalid PIN. Please enter a valid PIN (4-6 digits).",
			"ask_pin_retry_fr": "PIN invalide. Entrez un PIN valide (4 à 6 chiffres).",

			"confirm_en": "Confirm transfer: send {amount} {currency} to {receiver}. Reply 'yes' to confirm or 'no' to cancel.",
			"confirm_fr": "Confirmez le transfert : envoyer {amount} {currency} à {receiver}. Dites 'oui' pour confirmer ou 'non' pour annuler.",

			"confirm_retry_en": "Please reply 'yes' to confirm or 'no' to cancel this transfer.",
			"confirm_retry_fr": "Veuillez répondre 'oui' pour confirmer ou 'non' pour annuler.",

			"insufficient_funds_en": "Sorry, you don't have enough balance. Your current balance is {balance} {currency}.",
			"insufficient_funds_fr": "Désolé, solde insuffisant. Votre solde actuel est {balance} {currency}.",

			"success_en": "✅ Transfer completed successfully. Reference: {reference}.",
			"success_fr": "✅ Transfert effectué avec succès. Référence : {reference}.",

			"error_en": "I'm sorry, there was an issue processing your transfer. Please try again later.",
			"error_fr": "Je suis désolé, un problème est survenu lors du transfert. Veuillez réessayer plus tard.",

			"amount_positive_en": "Amount must be greater than 0.",
			"amount_positive_fr": "Le montant doit être supérieur à 0.",

			"ask_again_en": "Okay. How much do you want to send instead?",
			"ask_again_fr": "D'accord. Quel montant voulez-vous envoyer à la place ?",

			"blocked_en": "For your security, this transfer needs additional verification. Please contact support or try again later.",
			"blocked_fr": "Pour votre sécurité, ce transfert nécessite une vérification supplémentaire. Veuillez contacter le support ou réessayer plus tard.",

			"max_attempts_en": "I'm having trouble understanding. Let's try again later.",
			"max_attempts_fr": "J'ai du mal à comprendre. Réessayons plus tard.",

			"cancelled_en": "Transfer cancelled. How else can I help you?",
			"cancelled_fr": "Transfert annulé. Comment puis-je vous aider autrement ?",
		},

		"password_reset": {
			"start_en": "I'll help you reset your password. I'll send a reset link to your registered phone number {phone}. Do you want to proceed? (yes/no)",
			"start_fr": "Je vais vous aider à réinitialiser votre mot de passe. J'enverrai un lien de réinitialisation à votre numéro {phone}. Voulez-vous continuer ? (oui/non)",

			"confirm_retry_en": "Please say 'yes' to confirm the password reset or 'no' to cancel.",
			"confirm_retry_fr": "Veuillez dire 'oui' pour confirmer la réinitialisation ou 'non' pour annuler.",

			"success_en": "✅ Password reset initiated successfully! Please check your phone for instructions to set a new password.",
			"success_fr": "✅ Réinitialisation du mot de passe initiée avec succès ! Veuillez vérifier votre téléphone pour les instructions.",

			"error_en": "Sorry, I couldn't reset your password. Please try again later or contact support.",
			"error_fr": "Désolé, je n'ai pas pu réinitialiser votre mot de passe. Veuillez réessayer plus tard ou contacter le support.",

			"cancelled_en": "Password reset cancelled. How else can I help you?",
			"cancelled_fr": "Réinitialisation du mot de passe annulée. Comment puis-je vous aider autrement ?",

			"max_attempts_en": "Too many failed attempts. Please try again later.",
			"max_attempts_fr": "Trop de tentatives échouées. Veuillez réessayer plus tard.",

			"no_account_en": "You don't have an account yet. Would you like to create one?",
			"no_account_fr": "Vous n'avez pas encore de compte. Souhaitez-vous en créer un ?",
		},

		"password_change": {
			"start_en": "I'll help you change your password. Please enter your current password:",
			"start_fr": "Je vais vous aider à changer votre mot de passe. Veuillez entrer votre mot de passe actuel :",

			"ask_new_password_en": "Now please enter your new password (minimum 6 characters):",
			"ask_new_password_fr": "Maintenant, veuillez entrer votre nouveau mot de passe (minimum 6 caractères) :",

			"ask_confirm_password_en": "Please confirm your new password by entering it again:",
			"ask_confirm_password_fr": "Veuillez confirmer votre nouveau mot de passe en le saisissant à nouveau :",

			"password_mismatch_en": "The passwords don't match. Please enter your new password again:",
			"password_mismatch_fr": "Les mots de passe ne correspondent pas. Veuillez entrer à nouveau votre nouveau mot de passe :",

			"password_too_short_en": "Password must be at least 6 characters. Please try again:",
			"password_too_short_fr": "Le mot de passe doit contenir au moins 6 caractères. Veuillez réessayer :",

			"invalid_password_en": "Please enter a valid password:",
			"invalid_password_fr": "Veuillez entrer un mot de passe valide :",

			"success_en": "✅ Your password has been changed successfully!",
			"success_fr": "✅ Votre mot de passe a été changé avec succès !",

			"error_en": "Sorry, I couldn't change your password. The current password may be incorrect. Please try again.",
			"error_fr": "Désolé, je n'ai pas pu changer votre mot de passe. Le mot de passe actuel est peut-être incorrect. Veuillez réessayer.",

			"cancelled_en": "Password change cancelled. How else can I help you?",
			"cancelled_fr": "Changement de mot de passe annulé. Comment puis-je vous aider autrement ?",

			"max_attempts_en": "Too many failed attempts. Please try again later.",
			"max_attempts_fr": "Trop de tentatives échouées. Veuillez réessayer plus tard.",

			"no_account_en": "You don't have an account yet. Would you like to create one?",
			"no_account_fr": "Vous n'avez pas encore de compte. Souhaitez-vous en créer un ?",
		},

		"whatsapp_link": {
			"start_en": "I'll help you link your WhatsApp account.\n\n" +
				"Do you want to link your current phone number ({phone}) to WhatsApp?\n" +
				"• Say 'yes' to use the same number\n" +
				"• Say 'different' to enter a different WhatsApp number",
			"start_fr": "Je vais vous aider à lier votre compte WhatsApp.\n\n" +
				"Voulez-vous lier votre numéro actuel ({phone}) à WhatsApp ?\n" +
				"• Dites 'oui' pour utiliser le même numéro\n" +
				"• Dites 'différent' pour entrer un autre numéro WhatsApp",

			"ask_whatsapp_number_en": "Please enter your WhatsApp phone number:",
			"ask_whatsapp_number_fr": "Veuillez entrer votre numéro de téléphone WhatsApp :",

			"invalid_number_en": "I couldn't understand that number. Please enter a valid phone number (e.g., 690123456):",
			"invalid_number_fr": "Je n'ai pas compris ce numéro. Veuillez entrer un numéro valide (ex: 690123456) :",

			"confirm_en": "You want to link WhatsApp number {whatsapp} to your account. Is that correct? (yes/no)",
			"confirm_fr": "Vous voulez lier le numéro WhatsApp {whatsapp} à votre compte. Est-ce correct ? (oui/non)",

			"confirm_retry_en": "Please say 'yes' to confirm or 'no' to cancel.",
			"confirm_retry_fr": "Veuillez dire 'oui' pour confirmer ou 'non' pour annuler.",

			"success_en": "✅ WhatsApp account linked successfully! You can now receive notifications on WhatsApp.",
			"success_fr": "✅ Compte WhatsApp lié avec succès ! Vous pouvez maintenant recevoir des notifications sur WhatsApp.",

			"error_en": "Sorry, I couldn't link your WhatsApp account. Please try again later.",
			"error_fr": "Désolé, je n'ai pas pu lier votre compte WhatsApp. Veuillez réessayer plus tard.",

			"cancelled_en": "WhatsApp linking cancelled. How else can I help you?",
			"cancelled_fr": "Liaison WhatsApp annulée. Comment puis-je vous aider autrement ?",

			"max_attempts_en": "Too many failed attempts. Please try again later.",
			"max_attempts_fr": "Trop de tentatives échouées. Veuillez réessayer plus tard.",

			"no_account_en": "You don't have an account yet. Would you like to create one?",
			"no_account_fr": "Vous n'avez pas encore de compte. Souhaitez-vous en créer un ?",

			"already_linked_en": "Your account is already linked to WhatsApp. Would you like to update it?",
			"already_linked_fr": "Votre compte est déjà lié à WhatsApp. Souhaitez-vous le mettre à jour ?",
		},

		"dashboard": {
			"start_en": "Here is what I can show you:\n" +
				"1. Recent transactions\n" +
				"2. Total transaction amount\n" +
				"3. Registration statistics\n" +
				"4. Account holders\n\n" +
				"Please say the number or name.",
			"start_fr": "Voici ce que je peux vous montrer :\n" +
				"1. Transactions récentes\n" +
				"2. Montant total des transactions\n" +
				"3. Statistiques d'inscription\n" +
				"4. Titulaires de comptes\n\n" +
				"Veuillez dire le numéro ou le nom.",

			"ask_action_retry_en": "I didn't catch that. Say 'transactions', 'amount', 'registrations' or 'holders'.",
			"ask_action_retry_fr": "Je n'ai pas compris. Dites 'transactions', 'montant', 'inscriptions' ou 'détenteurs'.",

			"max_attempts_en": "I'm having trouble understanding. Let's try again later.",
			"max_attempts_fr": "J'ai du mal à comprendre. Réessayons plus tard.",

			"error_en": "I'm sorry, there was an issue fetching the dashboard data. Please try again later.",
			"error_fr": "Je suis désolé, un problème est survenu lors de la récupération des données. Veuillez réessayer plus tard.",

			"no_transactions_en": "No transactions found.",
			"no_transactions_fr": "Aucune transaction trouvée.",

			"transactions_header_en": "📊 Recent transactions:",
			"transactions_header_fr": "📊 Transactions récentes :",

			"amount_header_en": "💰 Transaction totals:",
			"amount_header_fr": "💰 Totaux des transactions :",

			"total_amount_en": "Total: {amount} {currency}",
			"total_amount_fr": "Total : {amount} {currency}",

			"total_count_en": "Transactions: {count}",
			"total_count_fr": "Transactions : {count}",

			"registrations_header_en": "📈 Registration statistics:",
			"registrations_header_fr": "📈 Statistiques d'inscription :",

			"total_registrations_en": "Total registrations: {count}",
			"total_registrations_fr": "Inscriptions totales : {count}",

			"breakdown_header_en": "Breakdown:",
			"breakdown_header_fr": "Détail :",

			"no_holders_en": "No account holders found.",
			"no_holders_fr": "Aucun titulaire de compte trouvé.",

			"holders_header_en": "👥 Account holders:",
			"holders_header_fr": "👥 Titulaires de comptes :",

			"holder_balance_en": "Balance: {balance} {currency}",
			"holder_balance_fr": "Solde : {balance} {currency}",

			"holder_group_en": "Group: {group}",
			"holder_group_fr": "Groupement : {group}",

			"cancelled_en": "Dashboard query cancelled. How else can I help you?",
			"cancelled_fr": "Consultation du tableau de bord annulée. Comment puis-je vous aider autrement ?",
		},

		FlowGeneral: {
			"welcome_en": fmt.Sprintf("Welcome to %s! How can I help you today?", cfg.CompanyName),
			"welcome_fr": fmt.Sprintf("Bienvenue chez %s ! Comment puis-je vous aider aujourd'hui ?", cfg.CompanyName),

			"goodbye_en": "Thank you for using our service. Have a great day!",
			"goodbye_fr": "Merci d'utiliser notre service. Bonne journée !",

			"help_en": "I can help you with:\n" +
				"• Create an account\n" +
				"• View your account\n" +
				"• Make a withdrawal\n" +
				"• Make a deposit\n" +
				"• Check your balance\n" +
				"• View transaction history\n\n" +
				"What would you like to do?",
			"help_fr": "Je peux vous aider à :\n" +
				"• Créer un compte\n" +
				"• Voir votre compte\n" +
				"• Faire un retrait\n" +
				"• Faire un dépôt\n" +
				"• Vérifier votre solde\n" +
				"• Voir l'historique des transactions\n\n" +
				"Que souhaitez-vous faire ?",

			"not_understood_en": "I'm sorry, I didn't understand that. Could you please rephrase?",
			"not_understood_fr": "Je suis désolé, je n'ai pas compris. Pourriez-vous reformuler ?",

			"no_account_en": "You don't have an account yet. Would you like to create one?",
			"no_account_fr": "Vous n'avez pas encore de compte. Souhaitez-vous en créer un ?",

			"already_has_account_en": fmt.Sprintf("You already have an account with %s. ", cfg.CompanyName) +
				"I can help you view your account, check your balance, make a withdrawal, or top up. What would you like to do?",
			"already_has_account_fr": fmt.Sprintf("Vous avez déjà un compte chez %s. ", cfg.CompanyName) +
				"Je peux vous aider à voir votre compte, vérifier votre solde, faire un retrait ou un dépôt. Que souhaitez-vous faire ?",

			"off_topic_en": "I can only help with your account and transactions. Is there something I can do for you there?",
			"off_topic_fr": "Je ne peux vous aider qu'avec votre compte et vos transactions. Puis-je faire quelque chose pour vous ?",

			"balance_en": "Your current balance is {balance} {currency}. Is there anything else?",
			"balance_fr": "Votre solde actuel est de {balance} {currency}. Puis-je vous aider avec autre chose ?",

			"balance_error_en": "Sorry, I couldn't retrieve your balance. Please try again later.",
			"balance_error_fr": "Désolé, je n'ai pas pu récupérer votre solde. Veuillez réessayer plus tard.",

			"recent_transactions_en": "Your recent transactions:",
			"recent_transactions_fr": "Vos transactions récentes :",

			"no_transactions_yet_en": "You don't have any transactions yet.",
			"no_transactions_yet_fr": "Vous n'avez pas encore de transactions.",

			"history_error_en": "Sorry, I couldn't retrieve your transactions. Please try again later.",
			"history_error_fr": "Désolé, je n'ai pas pu récupérer vos transactions. Veuillez réessayer plus tard.",

			"account_card_en": "📇 Your account:\n" +
				"• Name: {name}\n" +
				"• Phone: {phone}\n" +
				"• Balance: {balance} {currency}\n" +
				"• Groupement: {groupement}\n" +
				"• Status: {status}",
			"account_card_fr": "📇 Votre compte :\n" +
				"• Nom : {name}\n" +
				"• Téléphone : {phone}\n" +
				"• Solde : {balance} {currency}\n" +
				"• Groupement : {groupement}\n" +
				"• Statut : {status}",

			"account_error_en": "Sorry, I couldn't retrieve your account details. Please try again later.",
			"account_error_fr": "Désolé, je n'ai pas pu récupérer les détails de votre compte. Veuillez réessayer plus tard.",

			"cancelled_en": "Okay, I've cancelled that. Is there something else I can help you with?",
			"cancelled_fr": "D'accord, c'est annulé. Puis-je vous aider avec autre chose ?",

			"something_wrong_en": "Something went wrong. How can I help you?",
			"something_wrong_fr": "Une erreur est survenue. Comment puis-je vous aider ?",
		},
	}
}
