package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Titles
	message.SetString(lang, "title.dashboard", "%s | Painel")
	message.SetString(lang, "title.lists", "%s | Listas de Marketing")
	message.SetString(lang, "title.list_detail", "%s | Lista")
	message.SetString(lang, "title.campaigns", "%s | Campanhas")
	message.SetString(lang, "title.campaign_detail", "%s | Campanha")
	message.SetString(lang, "title.contacts", "%s | Contatos")
	message.SetString(lang, "title.verification", "%s | Verificação de E-mail")
	message.SetString(lang, "title.landing", "%s | Páginas de Destino")
	message.SetString(lang, "title.countries", "%s | Países")
	message.SetString(lang, "title.inventory", "%s | Estoque Serializado")
	message.SetString(lang, "title.accounts", "%s | Contas de Clientes")
	message.SetString(lang, "title.account_detail", "%s | Conta")

	// Navigation
	message.SetString(lang, "nav.dashboard", "Painel")
	message.SetString(lang, "nav.lists", "Listas")
	message.SetString(lang, "nav.campaigns", "Campanhas")
	message.SetString(lang, "nav.contacts", "Contatos")
	message.SetString(lang, "nav.verification", "Verificação")
	message.SetString(lang, "nav.landing", "Páginas de Destino")
	message.SetString(lang, "nav.countries", "Países")
	message.SetString(lang, "nav.inventory", "Estoque")
	message.SetString(lang, "nav.accounts", "Contas")
	message.SetString(lang, "nav.tenant", "Locatário")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Shared table and form text
	message.SetString(lang, "common.name", "Nome")
	message.SetString(lang, "common.status", "Status")
	message.SetString(lang, "common.created", "Criado")
	message.SetString(lang, "common.updated", "Atualizado")
	message.SetString(lang, "common.actions", "Ações")
	message.SetString(lang, "common.back", "Voltar")
	message.SetString(lang, "common.save", "Salvar")
	message.SetString(lang, "common.create", "Criar")
	message.SetString(lang, "common.delete", "Excluir")
	message.SetString(lang, "common.cancel", "Cancelar")
	message.SetString(lang, "common.search", "Buscar")
	message.SetString(lang, "common.enable", "Ativar")
	message.SetString(lang, "common.disable", "Desativar")
	message.SetString(lang, "common.next_page", "Próxima página")
	message.SetString(lang, "common.empty", "Nada por aqui ainda.")

	// Errors
	message.SetString(lang, "error.service_unavailable", "O serviço principal está indisponível. Tente novamente em instantes.")
	message.SetString(lang, "error.not_found", "Não encontrado.")
	message.SetString(lang, "error.invalid_request", "Não foi possível processar a solicitação.")
	message.SetString(lang, "error.forbidden", "Você não tem permissão para isso.")
	message.SetString(lang, "error.csrf_invalid", "A solicitação não veio deste site.")

	// Dashboard
	message.SetString(lang, "dashboard.heading", "Visão geral do locatário")
	message.SetString(lang, "dashboard.contacts_total", "Contatos")
	message.SetString(lang, "dashboard.lists_total", "Listas")
	message.SetString(lang, "dashboard.campaigns_active", "Campanhas ativas")
	message.SetString(lang, "dashboard.pending_verifications", "Verificações pendentes")
	message.SetString(lang, "dashboard.recent_activity", "Atividade recente")
	message.SetString(lang, "dashboard.no_activity", "Nenhuma atividade de operador registrada ainda.")

	// Lists
	message.SetString(lang, "lists.heading", "Listas de marketing")
	message.SetString(lang, "lists.new", "Nova lista")
	message.SetString(lang, "lists.type", "Tipo")
	message.SetString(lang, "lists.type_static", "Estática")
	message.SetString(lang, "lists.type_dynamic", "Segmento dinâmico")
	message.SetString(lang, "lists.members", "Membros")
	message.SetString(lang, "lists.description", "Descrição")
	message.SetString(lang, "lists.segment_rule", "Regra do segmento")
	message.SetString(lang, "lists.initial_contacts", "IDs de contatos iniciais")
	message.SetString(lang, "lists.import_members", "Importar membros")
	message.SetString(lang, "lists.import_empty", "O arquivo selecionado está vazio.")
	message.SetString(lang, "lists.import_result", "%d importados, %d ignorados.")
	message.SetString(lang, "lists.add_member", "Adicionar membro")
	message.SetString(lang, "lists.remove_member", "Remover")
	message.SetString(lang, "lists.email", "E-mail")
	message.SetString(lang, "lists.delete_confirm", "Excluir esta lista? As associações são removidas junto.")

	// Campaigns
	message.SetString(lang, "campaigns.heading", "Campanhas de e-mail")
	message.SetString(lang, "campaigns.new", "Nova campanha")
	message.SetString(lang, "campaigns.subject", "Assunto")
	message.SetString(lang, "campaigns.from_name", "Nome do remetente")
	message.SetString(lang, "campaigns.from_email", "E-mail do remetente")
	message.SetString(lang, "campaigns.body", "Corpo HTML")
	message.SetString(lang, "campaigns.body_file", "Arquivo do corpo")
	message.SetString(lang, "campaigns.scheduled_for", "Agendada para")
	message.SetString(lang, "campaigns.edit", "Editar campanha")
	message.SetString(lang, "campaigns.target_lists", "Listas alvo")
	message.SetString(lang, "campaigns.attach_list", "Anexar lista")
	message.SetString(lang, "campaigns.detach_list", "Desanexar")
	message.SetString(lang, "campaigns.send_now", "Enviar agora")
	message.SetString(lang, "campaigns.cancel_send", "Cancelar envio")
	message.SetString(lang, "campaigns.stats_sent", "Enviados")
	message.SetString(lang, "campaigns.stats_opened", "Abertos")
	message.SetString(lang, "campaigns.stats_clicked", "Cliques")
	message.SetString(lang, "campaigns.stats_bounced", "Devolvidos")
	message.SetString(lang, "campaigns.status.draft", "Rascunho")
	message.SetString(lang, "campaigns.status.scheduled", "Agendada")
	message.SetString(lang, "campaigns.status.sending", "Enviando")
	message.SetString(lang, "campaigns.status.sent", "Enviada")
	message.SetString(lang, "campaigns.status.canceled", "Cancelada")

	// Contacts
	message.SetString(lang, "contacts.heading", "Contatos")
	message.SetString(lang, "contacts.email", "E-mail")
	message.SetString(lang, "contacts.memberships", "Associações a listas")
	message.SetString(lang, "contacts.lookup_placeholder", "Buscar por prefixo de e-mail")
	message.SetString(lang, "contacts.no_results", "Nenhum contato encontrado.")

	// Email verification
	message.SetString(lang, "verification.heading", "Trabalhos de verificação de e-mail")
	message.SetString(lang, "verification.start", "Iniciar verificação")
	message.SetString(lang, "verification.download", "Baixar resultados")
	message.SetString(lang, "verification.progress", "%d de %d verificados")
	message.SetString(lang, "verification.status.pending", "Pendente")
	message.SetString(lang, "verification.status.running", "Em execução")
	message.SetString(lang, "verification.status.completed", "Concluído")
	message.SetString(lang, "verification.status.failed", "Falhou")

	// Landing pages
	message.SetString(lang, "landing.heading", "Páginas de destino")
	message.SetString(lang, "landing.blocks", "Blocos de conteúdo")
	message.SetString(lang, "landing.slug", "Slug")
	message.SetString(lang, "landing.block_kind", "Tipo")
	message.SetString(lang, "landing.preview", "Pré-visualizar")
	message.SetString(lang, "landing.move_up", "Mover para cima")
	message.SetString(lang, "landing.move_down", "Mover para baixo")
	message.SetString(lang, "landing.kind.hero_carousel", "Carrossel principal")
	message.SetString(lang, "landing.kind.banner_grid", "Grade de banners")
	message.SetString(lang, "landing.kind.rich_text", "Texto rico")
	message.SetString(lang, "landing.kind.product_rail", "Vitrine de produtos")
	message.SetString(lang, "landing.enabled", "Ativado")
	message.SetString(lang, "landing.disabled", "Desativado")

	// Countries
	message.SetString(lang, "countries.heading", "Países")
	message.SetString(lang, "countries.new", "Novo país")
	message.SetString(lang, "countries.code", "Código")
	message.SetString(lang, "countries.currency", "Moeda")
	message.SetString(lang, "countries.enabled", "Ativado")

	// Serialized inventory
	message.SetString(lang, "inventory.heading", "Estoque serializado")
	message.SetString(lang, "inventory.serial", "Série")
	message.SetString(lang, "inventory.product", "Produto")
	message.SetString(lang, "inventory.transition", "Alterar status")
	message.SetString(lang, "inventory.all_statuses", "Todos os status")
	message.SetString(lang, "inventory.status.in_stock", "Em estoque")
	message.SetString(lang, "inventory.status.reserved", "Reservado")
	message.SetString(lang, "inventory.status.sold", "Vendido")
	message.SetString(lang, "inventory.status.returned", "Devolvido")
	message.SetString(lang, "inventory.status.quarantined", "Em quarentena")

	// Customer accounts
	message.SetString(lang, "accounts.heading", "Contas de clientes")
	message.SetString(lang, "accounts.email", "E-mail")
	message.SetString(lang, "accounts.orders", "Pedidos recentes")
	message.SetString(lang, "accounts.tasks", "Tarefas")
	message.SetString(lang, "accounts.new_task", "Nova tarefa")
	message.SetString(lang, "accounts.task_done", "Concluir")
	message.SetString(lang, "accounts.ltv", "Valor vitalício")
	message.SetString(lang, "accounts.due", "Prazo")
	message.SetString(lang, "accounts.no_orders", "Nenhum pedido ainda.")
	message.SetString(lang, "accounts.no_tasks", "Nenhuma tarefa aberta.")
}
