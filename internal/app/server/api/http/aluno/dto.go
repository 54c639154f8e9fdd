package aluno

import "alunos/internal/domain/aluno"

type listInput struct{}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Alunos []aluno.Aluno `json:"alunos"`
	Total  int           `json:"total"`
}

type alunoRequest struct {
	Nome  string `json:"nome" doc:"Nome do aluno" example:"Ana Silva"`
	Email string `json:"email" doc:"E-mail do aluno" example:"ana@escola.br"`
	Curso string `json:"curso" doc:"Curso matriculado" example:"Engenharia"`
	Idade int    `json:"idade" doc:"Idade em anos" example:"21"`
}

func (r alunoRequest) toPayload() aluno.Payload {
	return aluno.Payload{
		Nome:  r.Nome,
		Email: r.Email,
		Curso: r.Curso,
		Idade: r.Idade,
	}
}

type createInput struct {
	Body alunoRequest
}

type updateInput struct {
	ID   string `path:"id" doc:"ID do aluno" format:"uuid"`
	Body alunoRequest
}

type deleteInput struct {
	ID string `path:"id" doc:"ID do aluno" format:"uuid"`
}

type alunoOutput struct {
	Body aluno.Aluno
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
