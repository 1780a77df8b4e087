// Package seed contiene la dotación estándar inicial de una unidad.
// El seeder la escribe como estándares (upsert por categoría + nombre
// normalizado); después el admin la ajusta desde la API.
package seed

import "github.com/frenchys-amb/ambutrack-api/internal/domain/entity"

// Item una línea de la dotación estándar. El nombre va en su forma visible;
// el seeder lo normaliza al escribirlo.
type Item struct {
	Name     string
	Quantity int
}

// RecommendedInventory dotación estándar por sección, en el orden del checklist.
var RecommendedInventory = map[string][]Item{
	entity.CategorySignosVitales: {
		{"Tensiómetro", 1},
		{"Estetoscopio", 2},
		{"Termómetro", 2},
		{"Oxímetro de pulso", 2},
		{"Laringoscopio adulto", 1},
		{"Laringoscopio pediátrico", 1},
		{"Laringoscopio neonatal", 1},
	},
	entity.CategoryAireOxigeno: {
		{"Cánula nasal adulto", 10},
		{"Cánula nasal pediátrica", 10},
		{"Máscara venturi adulto", 5},
		{"Máscara venturi pediátrico", 5},
		{"Máscara no reinhalación adulto", 5},
		{"Máscara no reinhalación pediátrico", 5},
		{"Tubo endotraqueal adulto", 5},
		{"Tubo endotraqueal pediátrico", 5},
		{"Tubo endotraqueal neonatal", 5},
		{"Mascarilla laríngea adulto", 3},
		{"Mascarilla laríngea pediátrico", 3},
	},
	entity.CategoryCanalizacion: {
		{"Angio #14", 5},
		{"Catéter 16G", 10},
		{"Catéter 18G", 10},
		{"Catéter 20G", 10},
		{"Catéter 22G", 10},
		{"Catéter 24G", 5},
		{"Llave de 3 vías", 10},
		{"Equipo de venoclisis", 10},
		{"Cinta adhesiva", 2},
		{"Torundas alcoholadas", 20},
		{"Guantes estériles", 10},
	},
	entity.CategoryMiscelaneos: {
		{"Tijera recta", 2},
		{"Tijera curva", 2},
		{"Pinza hemostática", 2},
		{"Bolsa de bioseguridad", 10},
		{"Vendas elásticas", 5},
		{"Vendas de gasa", 10},
		{"Apósitos estériles", 10},
		{"Esparadrapo", 5},
		{"Gasas estériles", 20},
		{"Solución salina 500ml", 5},
		{"Solución salina 1000ml", 5},
	},
	entity.CategoryMedicamentos: {
		{"Adrenalina 1mg", 10},
		{"Atropina 0.5mg", 10},
		{"Amiodarona 150mg", 5},
		{"Lidocaína 2%", 5},
		{"Diazepam 10mg", 5},
		{"Midazolam 5mg", 5},
		{"Morfina 10mg", 5},
		{"Fentanilo 50mcg", 5},
		{"Dipirona 1g", 10},
		{"Paracetamol 1g", 10},
		{"Hidrocortisona 100mg", 5},
		{"Salbutamol inhalador", 5},
		{"Ácido tranexámico 500mg", 5},
	},
	entity.CategoryEntubacion: {
		{"Tubo endotraqueal 6.0", 5},
		{"Tubo endotraqueal 6.5", 5},
		{"Tubo endotraqueal 7.0", 5},
		{"Tubo endotraqueal 7.5", 5},
		{"Tubo endotraqueal 8.0", 5},
		{"Tubo endotraqueal 8.5", 5},
		{"Tubo endotraqueal 9.0", 5},
		{"Mandril guía", 5},
		{"Pinza Magill", 2},
		{"Jeringa 10ml", 10},
		{"Jeringa 5ml", 10},
		{"Jeringa 3ml", 10},
	},
	entity.CategoryEquipoGeneral: {
		{"Monitor cardíaco", 1},
		{"Desfibrilador", 1},
		{"Ventilador mecánico", 1},
		{"Bomba de infusión", 2},
		{"Aspirador de secreciones", 1},
		{"Camilla plegable", 1},
		{"Silla de ruedas", 1},
		{"Oxígeno medicinal", 2},
	},
}
