package sheet

type saveRequest struct {
	Username  string `json:"username"`
	Nome      string `json:"nome"`
	Classe    string `json:"classe"`
	Raca      string `json:"raca"`
	Descricao string `json:"descricao"`
}
