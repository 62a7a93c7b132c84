package fleet

// Brands is the fixed label set fleets draw from. Labels are unique.
var Brands = []string{
	"Abarth", "Acura", "Aixam", "Alfa Romeo", "Alpine", "Aro", "Asia", "Aston Martin", "Audi",
	"Austin", "Autobianchi", "Bentley", "BMW", "Brilliance", "Bugatti", "Buick", "Cadillac", "Casalini",
	"Chatenet", "Chevrolet", "Chrysler", "Citroën", "Cupra", "Dacia", "Daewoo", "Daihatsu", "De Lorean",
	"DKW", "Dodge", "DS Automobiles", "Eagle", "Ferrari", "Fiat", "Ford", "Gaz", "GMC", "Gonow",
	"GWM", "Honda", "Hummer", "Hyundai", "Infiniti", "Isuzu", "Iveco", "Jaguar", "Jeep", "Kia", "Lada",
	"Lamborghini", "Lancia", "Land Rover", "Lexus", "Ligier", "Lincoln", "Lotus", "LTI", "Mahindra",
	"Maserati", "Maybach", "Mazda", "McLaren", "Mercedes-Benz", "Mercury", "MG", "Microcar", "Mini",
	"Mitsubishi", "Morgan", "Moskwicz", "Nissan", "NSU", "Nysa", "Oldsmobile", "Opel", "Peugeot",
	"Piaggio", "Plymouth", "Polonez", "Pontiac", "Porsche", "RAM", "Renault", "Rolls-Royce", "Rover",
	"Saab", "Saturn", "Scion", "Seat", "Škoda", "Smart", "SsangYong", "Subaru", "Suzuki", "Syrena",
	"Tarpan", "Tata", "Tatra", "Tesla", "Toyota", "Trabant", "Triumph", "TVR", "Uaz", "Vauxhall",
	"Volkswagen", "Volvo", "Warszawa", "Wartburg", "Wołga", "Yugo", "Zaporożec", "Żuk",
}
